// Package textbelt is the upstream SMS provider client used by the relay
// gateway.
package textbelt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DefaultURL is the provider's send endpoint.
const DefaultURL = "https://textbelt.com/text"

// Result is the provider's response envelope, passed through to the relay
// response mostly unchanged.
type Result struct {
	Success        bool   `json:"success"`
	TextID         string `json:"textId"`
	QuotaRemaining int    `json:"quotaRemaining"`
	Error          string `json:"error"`
}

type sendRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Key     string `json:"key"`
}

// Client posts send requests to the provider.
type Client struct {
	url  string
	http *http.Client
}

// NewClient returns a Client for the provider endpoint at url (DefaultURL
// in production). A nil httpClient falls back to http.DefaultClient.
func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{url: url, http: httpClient}
}

// Send forwards one message. The provider reports failures inside a 200
// response (Success=false), so callers must check Result.Success; a
// transport or decode error is returned as err.
func (c *Client) Send(ctx context.Context, to, message, key string) (*Result, error) {
	body, err := json.Marshal(sendRequest{Phone: to, Message: message, Key: key})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("textbelt request failed: %w", err)
	}
	defer resp.Body.Close()

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("textbelt returned unreadable response (%s): %w", resp.Status, err)
	}
	return &out, nil
}
