package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
	"github.com/dmitrijs2005/luvletter/internal/common"
)

const sendgridURL = "https://api.sendgrid.com/v3/mail/send"

type sendgridSender struct {
	settings models.Settings
	http     *http.Client

	url string
}

type sendgridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendgridPersonalization struct {
	To []sendgridAddress `json:"to"`
}

type sendgridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendgridRequest struct {
	Personalizations []sendgridPersonalization `json:"personalizations"`
	From             sendgridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendgridContent         `json:"content"`
}

func (s *sendgridSender) endpoint() string {
	if s.url != "" {
		return s.url
	}
	return sendgridURL
}

func (s *sendgridSender) Send(ctx context.Context, msg Message) error {
	to := make([]sendgridAddress, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, sendgridAddress{Email: addr})
	}

	body, err := json.Marshal(sendgridRequest{
		Personalizations: []sendgridPersonalization{{To: to}},
		From:             sendgridAddress{Email: s.settings.FromEmail, Name: s.settings.FromName},
		Subject:          msg.Subject,
		Content:          []sendgridContent{{Type: "text/html", Value: msg.HTML}},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.settings.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		msg := string(bytes.TrimSpace(detail))
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%w: sendgrid: %s", common.ErrProvider, msg)
	}
	return nil
}
