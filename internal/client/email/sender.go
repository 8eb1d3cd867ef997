// Package email sends newsletters through transactional-email providers.
package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
	"github.com/dmitrijs2005/luvletter/internal/common"
)

// Message is one outbound email.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender is the interface for email providers.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender builds a Sender from the user's settings. The provider must be
// one of the supported APIs and the settings must carry an API key and a
// from address.
func NewSender(s models.Settings, httpClient *http.Client) (Sender, error) {
	if !s.ProviderConfigured() {
		return nil, fmt.Errorf("%w: API key and from email are required", common.ErrValidation)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	switch s.APIProvider {
	case models.ProviderResend:
		return &resendSender{settings: s, http: httpClient}, nil
	case models.ProviderSendGrid:
		return &sendgridSender{settings: s, http: httpClient}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported email provider %q", common.ErrValidation, s.APIProvider)
	}
}

// fromHeader renders the From value, "Name <addr>" when a name is set.
func fromHeader(s models.Settings) string {
	if s.FromName != "" {
		return fmt.Sprintf("%s <%s>", s.FromName, s.FromEmail)
	}
	return s.FromEmail
}
