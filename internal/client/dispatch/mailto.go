package dispatch

import (
	"fmt"
	"net/url"
	"strings"
)

// MaxMailtoLength is the compose-link length budget. Mobile mail clients
// commonly truncate or reject mailto URLs around 2000 characters.
const MaxMailtoLength = 2000

// escape percent-encodes for a mailto query component. url.QueryEscape is
// close but spells space as '+', which mail clients take literally.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// MailtoLink builds a compose link addressing all recipients via blind
// copy.
func MailtoLink(bcc []string, subject, body string) string {
	return fmt.Sprintf("mailto:?bcc=%s&subject=%s&body=%s",
		escape(strings.Join(bcc, ",")), escape(subject), escape(body))
}

// clipboardText is the plain-text equivalent of the compose link, used when
// the handoff cannot be attempted.
func clipboardText(subject, body string) string {
	return fmt.Sprintf("To: (BCC your friends)\nSubject: %s\n\n%s", subject, body)
}
