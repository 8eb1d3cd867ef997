// Package models defines the record types held by the local store: events,
// subscribers, settings, and the export/import document.
package models

import "time"

// Event is one upcoming (or past) appearance the user wants friends to know
// about. ID and CreatedAt are assigned by the store at creation and never
// change afterwards; every other field is replaceable as a whole record.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
