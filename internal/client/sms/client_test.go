package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/luvletter/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/send-sms", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "+15551234567", req["to"])
		assert.Equal(t, "hi", req["message"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true, "textId": "t-1", "quotaRemaining": 41,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	res, err := c.Send(context.Background(), "+15551234567", "hi")
	require.NoError(t, err)
	assert.Equal(t, "t-1", res.TextID)
	assert.Equal(t, 41, res.QuotaRemaining)
}

func TestClient_Send_RelayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": "Failed to send SMS", "details": "Out of quota", "quotaRemaining": 0,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.Send(context.Background(), "+15551234567", "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrProvider)
	assert.Contains(t, err.Error(), "Out of quota")
}

func TestClient_Send_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.Send(ctx, "+15551234567", "hi")
	assert.Error(t, err)
}
