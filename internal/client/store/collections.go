// Package store implements the persistent store: a key-value port over
// named collections, backed by SQLite in production and by a map in tests,
// with the record-level operations layered on top.
package store

import "context"

// Fixed logical keys for the three persisted collections. The prefix is
// kept for compatibility with state exported by earlier releases.
const (
	KeyEvents      = "luvletter_events"
	KeySubscribers = "luvletter_subscribers"
	KeySettings    = "luvletter_settings"
)

// Collections is the storage port: a get/set/delete surface over named
// JSON blobs. Get returns (nil, nil) when the key has never been written,
// so an uninitialized store reads as empty rather than failing.
type Collections interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
