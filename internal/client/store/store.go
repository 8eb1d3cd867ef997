package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
	"github.com/dmitrijs2005/luvletter/internal/common"
)

// Store exposes record-level operations over an injected Collections
// backend. Every mutation is one synchronous write of the whole affected
// collection; there is no transaction spanning collections.
type Store struct {
	c   Collections
	now func() time.Time

	mu     sync.Mutex
	lastID int64
}

// New returns a Store over the given Collections backend.
func New(c Collections) *Store {
	return &Store{c: c, now: time.Now}
}

// WithClock overrides the store's clock. Intended for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// newID returns a current-time-derived id (milliseconds since the epoch,
// decimal). Two adds landing in the same millisecond are bumped forward so
// ids stay unique within the process.
func (s *Store) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms := s.now().UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return strconv.FormatInt(ms, 10)
}

func (s *Store) readJSON(ctx context.Context, key string, dst any) error {
	data, err := s.c.Get(ctx, key)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode collection[%s]: %w", key, err)
	}
	return nil
}

func (s *Store) writeJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode collection[%s]: %w", key, err)
	}
	return s.c.Set(ctx, key, data)
}

// ListEvents returns all events in insertion order. An uninitialized store
// reads as empty.
func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.readJSON(ctx, KeyEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// AddEvent assigns a fresh id and CreatedAt, appends the event, persists,
// and returns the stored record.
func (s *Store) AddEvent(ctx context.Context, e models.Event) (models.Event, error) {
	var zero models.Event
	if strings.TrimSpace(e.Title) == "" {
		return zero, fmt.Errorf("%w: event title is required", common.ErrValidation)
	}
	if e.Date.IsZero() {
		return zero, fmt.Errorf("%w: event date is required", common.ErrValidation)
	}

	events, err := s.ListEvents(ctx)
	if err != nil {
		return zero, err
	}

	e.ID = s.newID()
	e.CreatedAt = s.now()
	events = append(events, e)

	if err := s.writeJSON(ctx, KeyEvents, events); err != nil {
		return zero, err
	}
	return e, nil
}

// UpdateEvent replaces the record with matching id, keeping its ID and
// CreatedAt. Returns common.ErrNotFound if no such event exists.
func (s *Store) UpdateEvent(ctx context.Context, id string, e models.Event) (models.Event, error) {
	var zero models.Event
	events, err := s.ListEvents(ctx)
	if err != nil {
		return zero, err
	}
	for i := range events {
		if events[i].ID == id {
			e.ID = events[i].ID
			e.CreatedAt = events[i].CreatedAt
			events[i] = e
			if err := s.writeJSON(ctx, KeyEvents, events); err != nil {
				return zero, err
			}
			return e, nil
		}
	}
	return zero, fmt.Errorf("event %s: %w", id, common.ErrNotFound)
}

// DeleteEvent removes the event with matching id. Deleting an absent id is
// a no-op, not an error.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return err
	}
	filtered := events[:0]
	for _, e := range events {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	return s.writeJSON(ctx, KeyEvents, filtered)
}

// ListSubscribers returns all subscribers in insertion order.
func (s *Store) ListSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	var subs []models.Subscriber
	if err := s.readJSON(ctx, KeySubscribers, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// AddSubscriber appends a subscriber with a fresh id and AddedAt. Phone
// contacts are normalized first (see NormalizePhone). Duplicate contacts
// are allowed.
func (s *Store) AddSubscriber(ctx context.Context, contact, name string, ch models.Channel) (models.Subscriber, error) {
	var zero models.Subscriber
	if strings.TrimSpace(contact) == "" {
		return zero, fmt.Errorf("%w: contact is required", common.ErrValidation)
	}
	if ch == models.ChannelPhone {
		contact = NormalizePhone(contact)
	}

	subs, err := s.ListSubscribers(ctx)
	if err != nil {
		return zero, err
	}

	sub := models.Subscriber{
		ID:      s.newID(),
		Contact: contact,
		Name:    name,
		Type:    ch,
		AddedAt: s.now(),
	}
	subs = append(subs, sub)

	if err := s.writeJSON(ctx, KeySubscribers, subs); err != nil {
		return zero, err
	}
	return sub, nil
}

// DeleteSubscriber removes the subscriber with matching id; no-op if absent.
func (s *Store) DeleteSubscriber(ctx context.Context, id string) error {
	subs, err := s.ListSubscribers(ctx)
	if err != nil {
		return err
	}
	filtered := subs[:0]
	for _, sub := range subs {
		if sub.ID != id {
			filtered = append(filtered, sub)
		}
	}
	return s.writeJSON(ctx, KeySubscribers, filtered)
}

// GetSettings returns the singleton settings record, zero-valued when the
// store has never saved one.
func (s *Store) GetSettings(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	if err := s.readJSON(ctx, KeySettings, &settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

// SaveSettings replaces the whole settings record. There is no partial
// merge at this layer; callers merge first.
func (s *Store) SaveSettings(ctx context.Context, settings models.Settings) error {
	return s.writeJSON(ctx, KeySettings, settings)
}

// ExportAll snapshots all three collections plus a timestamp.
func (s *Store) ExportAll(ctx context.Context) (models.StoreDocument, error) {
	var zero models.StoreDocument

	events, err := s.ListEvents(ctx)
	if err != nil {
		return zero, err
	}
	subs, err := s.ListSubscribers(ctx)
	if err != nil {
		return zero, err
	}
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return zero, err
	}

	if events == nil {
		events = []models.Event{}
	}
	if subs == nil {
		subs = []models.Subscriber{}
	}

	return models.StoreDocument{
		Events:      events,
		Subscribers: subs,
		Settings:    &settings,
		ExportedAt:  s.now(),
	}, nil
}

// ImportAll replaces each collection wholesale if present in doc; a nil
// field leaves that collection unchanged. Records are accepted as-is with
// no schema validation. Each collection is one independent write, so a
// failure partway through can leave earlier collections replaced and later
// ones untouched.
func (s *Store) ImportAll(ctx context.Context, doc models.StoreDocument) error {
	if doc.Events != nil {
		if err := s.writeJSON(ctx, KeyEvents, doc.Events); err != nil {
			return err
		}
	}
	if doc.Subscribers != nil {
		if err := s.writeJSON(ctx, KeySubscribers, doc.Subscribers); err != nil {
			return err
		}
	}
	if doc.Settings != nil {
		if err := s.writeJSON(ctx, KeySettings, *doc.Settings); err != nil {
			return err
		}
	}
	return nil
}

// NormalizePhone strips everything except digits and '+' signs, then forces
// a +1 prefix: a number without '+' gets "+1" prepended, and a number with
// '+' followed by anything but '1' gets the national code 1 inserted after
// the '+'. That second branch clobbers real country codes (e.g. +44...
// becomes +144...); the behavior is kept as shipped, quirk and all, so
// stored contacts stay stable across versions.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	switch {
	case !strings.HasPrefix(cleaned, "+"):
		return "+1" + cleaned
	case !strings.HasPrefix(cleaned, "+1"):
		return "+1" + cleaned[1:]
	default:
		return cleaned
	}
}
