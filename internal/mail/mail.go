package mail

import (
	"context"
	netmail "net/mail"
	"strings"
)

// Attachment is one file attached to an outgoing message.
type Attachment struct {
	Filename string
	Bytes    []byte
	MIMEType string
}

// Message is a single outgoing email.
type Message struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Sender delivers one message per call. Implementations own any retry
// policy; callers treat each Send as a single attempt.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NormEmail lowercases, trims and validates an address. Empty is treated as
// ok/optional.
func NormEmail(s string) (string, bool) {
	e := strings.TrimSpace(strings.ToLower(s))
	if e == "" {
		return "", true
	}
	_, err := netmail.ParseAddress(e)
	return e, err == nil
}
