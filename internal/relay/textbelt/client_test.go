package textbelt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSend(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(Result{Success: true, TextID: "123", QuotaRemaining: 41})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	res, err := c.Send(context.Background(), "+15551234567", "hello", "secret")
	require.NoError(t, err)

	assert.Equal(t, "+15551234567", got.Phone)
	assert.Equal(t, "hello", got.Message)
	assert.Equal(t, "secret", got.Key)
	assert.True(t, res.Success)
	assert.Equal(t, "123", res.TextID)
	assert.Equal(t, 41, res.QuotaRemaining)
}

func TestClientSendProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Result{Success: false, Error: "Out of quota", QuotaRemaining: 0})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	res, err := c.Send(context.Background(), "+15551234567", "hello", "secret")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Out of quota", res.Error)
}

func TestClientSendBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.Send(context.Background(), "+15551234567", "hello", "secret")
	assert.Error(t, err)
}

func TestClientSendCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.Send(ctx, "+15551234567", "hello", "secret")
	assert.Error(t, err)
}
