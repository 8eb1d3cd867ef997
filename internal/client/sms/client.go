// Package sms is the HTTP client for the relay gateway's send endpoint.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/luvletter/internal/common"
)

// SendResult is what the relay reports back for a delivered message. Quota
// accounting lives entirely on the provider side; QuotaRemaining is
// whatever it chose to report for this send.
type SendResult struct {
	TextID         string `json:"textId"`
	QuotaRemaining int    `json:"quotaRemaining"`
}

type sendRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type sendResponse struct {
	Success        bool   `json:"success"`
	TextID         string `json:"textId"`
	QuotaRemaining int    `json:"quotaRemaining"`
	Error          string `json:"error"`
	Details        string `json:"details"`
}

// Client posts send requests to a relay gateway instance.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a Client for the relay at base (scheme://host[:port]).
// A nil httpClient falls back to http.DefaultClient.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: base, http: httpClient}
}

// Send delivers one message to one phone number through the relay. A
// non-200 response or a non-success envelope is returned as an error
// carrying the relay's own detail; there is no retry.
func (c *Client) Send(ctx context.Context, to, message string) (*SendResult, error) {
	body, err := json.Marshal(sendRequest{To: to, Message: message})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/send-sms", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("relay returned unreadable response (%s): %w", resp.Status, err)
	}

	if resp.StatusCode != http.StatusOK || !out.Success {
		detail := out.Error
		if out.Details != "" {
			detail = fmt.Sprintf("%s: %s", out.Error, out.Details)
		}
		if detail == "" {
			detail = resp.Status
		}
		return nil, fmt.Errorf("%w: %s", common.ErrProvider, detail)
	}

	return &SendResult{TextID: out.TextID, QuotaRemaining: out.QuotaRemaining}, nil
}
