// Package dispatch routes a composed newsletter to subscribers over the
// available channels and aggregates the per-subscriber outcomes.
package dispatch

import (
	"context"

	"github.com/dmitrijs2005/luvletter/internal/client/sms"
)

// MailtoOpener hands a prefilled compose link to the user's own mail
// client. Implementations typically shell out to the platform opener.
type MailtoOpener interface {
	Open(link string) error
}

// Clipboard is the secondary channel used when the mail handoff cannot be
// attempted or fails.
type Clipboard interface {
	Write(text string) error
}

// SMSSender delivers one message to one phone number. The relay client
// satisfies this.
type SMSSender interface {
	Send(ctx context.Context, to, message string) (*sms.SendResult, error)
}

// ConfirmFunc asks the user to approve an action that consumes quota.
// Returning false skips the SMS phase entirely.
type ConfirmFunc func(prompt string) bool
