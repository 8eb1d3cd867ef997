package models

import "time"

// StoreDocument is the export/import unit: a snapshot of all three
// collections plus the time it was taken. A nil collection field means
// "absent from the document"; import leaves the corresponding collection
// unchanged in that case.
type StoreDocument struct {
	Events      []Event      `json:"events"`
	Subscribers []Subscriber `json:"subscribers"`
	Settings    *Settings    `json:"settings"`
	ExportedAt  time.Time    `json:"exportedAt"`
}
