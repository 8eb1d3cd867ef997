package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriber_Channel_DefaultsToEmail(t *testing.T) {
	tests := []struct {
		name string
		typ  Channel
		want Channel
	}{
		{"explicit email", ChannelEmail, ChannelEmail},
		{"explicit phone", ChannelPhone, ChannelPhone},
		{"absent", "", ChannelEmail},
		{"unrecognized", "pigeon", ChannelEmail},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Subscriber{Contact: "x", Type: tc.typ}
			assert.Equal(t, tc.want, s.Channel())
		})
	}
}

func TestSubscriber_Channel_LegacyJSONWithoutType(t *testing.T) {
	var s Subscriber
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","contact":"a@b.c"}`), &s))
	assert.Equal(t, ChannelEmail, s.Channel())
}

func TestSettings_ProviderConfigured(t *testing.T) {
	assert.False(t, Settings{}.ProviderConfigured())
	assert.False(t, Settings{APIKey: "k"}.ProviderConfigured())
	assert.False(t, Settings{FromEmail: "me@x.y"}.ProviderConfigured())
	assert.True(t, Settings{APIKey: "k", FromEmail: "me@x.y"}.ProviderConfigured())
}
