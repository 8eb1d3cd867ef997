package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
	"github.com/dmitrijs2005/luvletter/internal/common"
)

// friendRecord is the wire shape accepted by ImportFriendList. Older
// exports used an "email" field where newer ones use "contact", and carried
// no "type"; both shapes are accepted.
type friendRecord struct {
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Type    string `json:"type"`
}

// ExportFriendList renders the subscriber list as pretty-printed JSON,
// suitable for handing to another luvletter user.
func (s *Store) ExportFriendList(ctx context.Context) ([]byte, int, error) {
	subs, err := s.ListSubscribers(ctx)
	if err != nil {
		return nil, 0, err
	}
	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return nil, 0, err
	}
	return data, len(subs), nil
}

// ImportFriendList parses a shared friend list and appends each usable
// record as a new subscriber (fresh ids, contacts taken verbatim). Records
// without a contact are skipped. Returns the number of subscribers added.
func (s *Store) ImportFriendList(ctx context.Context, data []byte) (int, error) {
	var friends []friendRecord
	if err := json.Unmarshal(data, &friends); err != nil {
		return 0, fmt.Errorf("%w: invalid friend list format", common.ErrValidation)
	}

	added := 0
	for _, f := range friends {
		contact := f.Contact
		if contact == "" {
			contact = f.Email
		}
		if contact == "" {
			continue
		}

		ch := models.Channel(f.Type)
		if ch == "" {
			ch = models.ChannelEmail
		}

		subs, err := s.ListSubscribers(ctx)
		if err != nil {
			return added, err
		}
		sub := models.Subscriber{
			ID:      s.newID(),
			Contact: contact,
			Name:    f.Name,
			Type:    ch,
			AddedAt: s.now(),
		}
		subs = append(subs, sub)
		if err := s.writeJSON(ctx, KeySubscribers, subs); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
