package models

// Provider names a supported transactional-email API.
type Provider string

const (
	ProviderResend   Provider = "resend"
	ProviderSendGrid Provider = "sendgrid"
)

// Settings is the singleton configuration record. UserEmail feeds the
// subscribe link; the remaining fields configure the optional provider
// email channel. The store always replaces the whole record, so callers
// merge before saving.
type Settings struct {
	UserEmail   string   `json:"userEmail,omitempty"`
	APIKey      string   `json:"apiKey,omitempty"`
	APIProvider Provider `json:"apiProvider,omitempty"`
	FromEmail   string   `json:"fromEmail,omitempty"`
	FromName    string   `json:"fromName,omitempty"`
}

// ProviderConfigured reports whether the settings carry enough to send
// through an email API instead of the mail-client handoff.
func (s Settings) ProviderConfigured() bool {
	return s.APIKey != "" && s.FromEmail != ""
}
