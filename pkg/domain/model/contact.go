package model

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// MaxContactMessageLength bounds the message body in characters
const MaxContactMessageLength = 5000

// ContactMessage is a submission of the public contact form. It is logged
// and acknowledged, never stored.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email" masq:"secret"`
	Message string `json:"message"`
}

// Validate checks that all fields are present and the email is well formed
func (m ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return MissingField("name", "non-empty string")
	}
	if strings.TrimSpace(m.Email) == "" {
		return MissingField("email", "email address")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return invalidField("malformed email address", "email", "email address", "(redacted)")
	}
	if strings.TrimSpace(m.Message) == "" {
		return MissingField("message", "non-empty string")
	}
	if n := utf8.RuneCountInString(m.Message); n > MaxContactMessageLength {
		return invalidField("message too long", "message", "at most 5000 characters", n)
	}
	return nil
}

// ContactReceipt acknowledges a contact submission
type ContactReceipt struct {
	ID string `json:"id"`
}
