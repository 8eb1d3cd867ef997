package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
	"github.com/dmitrijs2005/luvletter/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFriendList_PrettyJSON(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	_, err := s.AddSubscriber(ctx, "a@b.c", "A", models.ChannelEmail)
	require.NoError(t, err)

	data, n, err := s.ExportFriendList(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var subs []models.Subscriber
	require.NoError(t, json.Unmarshal(data, &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, "a@b.c", subs[0].Contact)
}

func TestImportFriendList_AcceptsLegacyShape(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	// old exports used "email" and had no "type"
	payload := `[
		{"email": "old@friend.c", "name": "Old"},
		{"contact": "+15551234567", "name": "New", "type": "phone"},
		{"name": "no contact at all"}
	]`

	added, err := s.ImportFriendList(ctx, []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	subs, err := s.ListSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "old@friend.c", subs[0].Contact)
	assert.Equal(t, models.ChannelEmail, subs[0].Channel())
	assert.Equal(t, models.ChannelPhone, subs[1].Channel())
	assert.NotEmpty(t, subs[0].ID)
	assert.NotEqual(t, subs[0].ID, subs[1].ID)
}

func TestImportFriendList_InvalidJSON(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	_, err := s.ImportFriendList(ctx, []byte(`{"not":"an array"}`))
	assert.ErrorIs(t, err, common.ErrValidation)
}
