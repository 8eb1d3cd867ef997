package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/luvletter/internal/client/compose"
	"github.com/dmitrijs2005/luvletter/internal/client/email"
	"github.com/dmitrijs2005/luvletter/internal/client/models"
	"github.com/dmitrijs2005/luvletter/internal/common"
	"github.com/dmitrijs2005/luvletter/internal/logging"
	"github.com/google/uuid"
)

// Dispatcher delivers a composed newsletter through one or two channels.
// All side effects go through the injected ports, so tests can observe
// every attempted delivery.
type Dispatcher struct {
	Mail    MailtoOpener
	Clip    Clipboard
	SMS     SMSSender
	Confirm ConfirmFunc
	// Email is the optional provider channel. When non-nil, email
	// subscribers get the HTML newsletter through it instead of the
	// mail-client handoff.
	Email email.Sender

	Logger logging.Logger

	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

func (d *Dispatcher) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Send partitions subscribers by channel, runs the email channel (provider
// or handoff with clipboard fallback), then the sequential SMS fan-out
// behind a confirmation gate, and reports one aggregate Result.
//
// With zero subscribers it returns common.ErrNothingToSend and performs no
// side effects. A single failing SMS never aborts delivery to the rest;
// cancelling ctx between sends stops the loop and counts the remainder as
// skipped. Nothing here retries.
func (d *Dispatcher) Send(ctx context.Context, subs []models.Subscriber, events []models.Event, intro string, settings models.Settings) (*Result, error) {
	if len(subs) == 0 {
		return nil, common.ErrNothingToSend
	}

	var emails, phones []models.Subscriber
	for _, s := range subs {
		if s.Channel() == models.ChannelPhone {
			phones = append(phones, s)
		} else {
			emails = append(emails, s)
		}
	}

	now := d.now()
	subject := compose.Subject(now)
	body := compose.RenderPlainText(intro, events)

	res := &Result{
		ReportID:       uuid.NewString(),
		EmailOutcome:   EmailNone,
		QuotaRemaining: -1,
	}

	if len(emails) > 0 {
		d.sendEmail(ctx, res, emails, events, intro, settings, subject, body, now)
	}

	if len(phones) > 0 {
		d.sendSMS(ctx, res, phones, body)
	}

	return res, nil
}

func (d *Dispatcher) sendEmail(ctx context.Context, res *Result, emails []models.Subscriber, events []models.Event, intro string, settings models.Settings, subject, body string, now time.Time) {
	res.EmailRecipients = len(emails)

	if d.Email != nil {
		to := make([]string, 0, len(emails))
		for _, s := range emails {
			to = append(to, s.Contact)
		}
		html := compose.RenderHTML(events, intro, settings, now)
		if err := d.Email.Send(ctx, email.Message{To: to, Subject: subject, HTML: html}); err != nil {
			d.logError(ctx, "provider email failed", err)
			res.EmailErr = err
			return
		}
		res.EmailOutcome = EmailProvider
		return
	}

	bcc := make([]string, 0, len(emails))
	for _, s := range emails {
		bcc = append(bcc, s.Contact)
	}
	link := MailtoLink(bcc, subject, body)

	if len(link) > MaxMailtoLength {
		res.EmailOutcome = EmailTooLongCopied
		if err := d.Clip.Write(clipboardText(subject, body)); err != nil {
			res.EmailErr = fmt.Errorf("clipboard fallback failed: %w", err)
		}
		return
	}

	if err := d.Mail.Open(link); err != nil {
		d.logError(ctx, "mail handoff failed", err)
		res.EmailOutcome = EmailHandoffFailedCopied
		if err := d.Clip.Write(clipboardText(subject, body)); err != nil {
			res.EmailErr = fmt.Errorf("clipboard fallback failed: %w", err)
		}
		return
	}
	res.EmailOutcome = EmailHandoff
}

func (d *Dispatcher) sendSMS(ctx context.Context, res *Result, phones []models.Subscriber, body string) {
	prompt := fmt.Sprintf("Send %d SMS message(s)? Each one uses a quota unit.", len(phones))
	if d.Confirm == nil || !d.Confirm(prompt) {
		res.SMSDeclined = true
		res.SMSSkipped = len(phones)
		return
	}

	for i, s := range phones {
		if ctx.Err() != nil {
			res.SMSSkipped = len(phones) - i
			return
		}

		out, err := d.SMS.Send(ctx, s.Contact, body)
		if err != nil {
			d.logError(ctx, "sms send failed", err, "contact", s.Contact)
			res.SMSFailed++
			res.SMSFailures = append(res.SMSFailures, SMSFailure{Contact: s.Contact, Err: err})
			continue
		}
		res.SMSSent++
		res.QuotaRemaining = out.QuotaRemaining
	}
}

func (d *Dispatcher) logError(ctx context.Context, msg string, err error, args ...any) {
	if d.Logger == nil {
		return
	}
	d.Logger.Error(ctx, msg, append([]any{"err", err}, args...)...)
}
