package mailer

import (
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ErrEmptyRecipients is returned when a message has no destination address.
var ErrEmptyRecipients = errors.New("message has no recipients")

type resendMailer struct {
	client *resend.Client
}

// NewResendMailer creates a Mailer backed by the Resend transactional
// email API.
func NewResendMailer(apiKey string) Mailer {
	return &resendMailer{client: resend.NewClient(apiKey)}
}

func (m *resendMailer) Send(msg Message) error {
	if len(msg.To) == 0 {
		return ErrEmptyRecipients
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	if _, err := m.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email via resend: %w", err)
	}
	return nil
}
