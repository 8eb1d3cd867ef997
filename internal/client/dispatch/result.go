package dispatch

import (
	"fmt"
	"strings"
)

// EmailOutcome names how the email channel concluded.
type EmailOutcome string

const (
	// EmailNone: no email subscribers, channel not attempted.
	EmailNone EmailOutcome = "none"
	// EmailHandoff: the prefilled compose link was handed to the mail client.
	EmailHandoff EmailOutcome = "handoff"
	// EmailTooLongCopied: the link exceeded the length budget; content went
	// to the clipboard instead.
	EmailTooLongCopied EmailOutcome = "too-long-copied"
	// EmailHandoffFailedCopied: the handoff itself errored; content went to
	// the clipboard instead.
	EmailHandoffFailedCopied EmailOutcome = "handoff-failed-copied"
	// EmailProvider: the HTML newsletter was sent through the configured
	// email API.
	EmailProvider EmailOutcome = "provider"
)

// SMSFailure records one phone subscriber the relay could not reach.
type SMSFailure struct {
	Contact string
	Err     error
}

// Result is the aggregate outcome of one dispatch.
type Result struct {
	ReportID string

	EmailOutcome    EmailOutcome
	EmailRecipients int
	// EmailErr is set when the email channel ended in an unrecovered error
	// (provider rejection, or the clipboard fallback itself failing). It
	// does not stop the SMS phase.
	EmailErr error

	// SMSDeclined is true when the user refused the quota confirmation.
	SMSDeclined bool
	SMSSent     int
	SMSFailed   int
	// SMSSkipped counts phone subscribers never attempted (declined
	// confirmation or cancelled mid-loop).
	SMSSkipped  int
	SMSFailures []SMSFailure

	// QuotaRemaining is the last value the relay reported, or -1 when no
	// send succeeded. Quota is accounted remotely; this is informational.
	QuotaRemaining int
}

func (r *Result) smsTotal() int {
	return r.SMSSent + r.SMSFailed + r.SMSSkipped
}

// Summary renders the aggregate outcome as user-facing text, one line per
// channel, with failures listed when present.
func (r *Result) Summary() string {
	var lines []string

	switch r.EmailOutcome {
	case EmailHandoff:
		lines = append(lines, fmt.Sprintf("email draft opened for %d friend(s)", r.EmailRecipients))
	case EmailTooLongCopied:
		lines = append(lines, "email too long for auto-open, content copied to clipboard")
	case EmailHandoffFailedCopied:
		lines = append(lines, "could not open email app, content copied to clipboard")
	case EmailProvider:
		lines = append(lines, fmt.Sprintf("email sent to %d friend(s)", r.EmailRecipients))
	}
	if r.EmailErr != nil {
		lines = append(lines, fmt.Sprintf("email channel error: %v", r.EmailErr))
	}

	if total := r.smsTotal(); total > 0 {
		switch {
		case r.SMSDeclined:
			lines = append(lines, fmt.Sprintf("SMS skipped for %d friend(s)", total))
		default:
			lines = append(lines, fmt.Sprintf("SMS sent to %d/%d friend(s)", r.SMSSent, total))
		}
		for _, f := range r.SMSFailures {
			lines = append(lines, fmt.Sprintf("  failed %s: %v", f.Contact, f.Err))
		}
	}

	return strings.Join(lines, "\n")
}
