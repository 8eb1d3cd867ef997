package models

import "time"

// Channel selects how a subscriber is reached.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPhone Channel = "phone"
)

// Subscriber is one friend on the mailing list. Contact is an email address
// or a phone number depending on Type. Records written by older versions of
// the app carry no Type at all; use Channel() rather than reading Type
// directly so the absent value defaults to email in exactly one place.
//
// Duplicate contacts are allowed; the list is not a set.
type Subscriber struct {
	ID      string    `json:"id"`
	Contact string    `json:"contact"`
	Name    string    `json:"name,omitempty"`
	Type    Channel   `json:"type,omitempty"`
	AddedAt time.Time `json:"addedAt"`
}

// Channel returns the delivery channel, defaulting to email when Type is
// absent or unrecognized.
func (s Subscriber) Channel() Channel {
	if s.Type == ChannelPhone {
		return ChannelPhone
	}
	return ChannelEmail
}
