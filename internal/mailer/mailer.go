package mailer

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Message is one outbound guardian email with both plain-text and HTML
// bodies; clients that cannot render HTML fall back to the text part.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer is an interface for sending guardian emails.
type Mailer interface {
	Send(msg Message) error
}

// SendGridMailer implements Mailer on the SendGrid v3 API.
type SendGridMailer struct {
	APIKey    string
	FromName  string
	FromEmail string
}

func NewSendGridMailer(apiKey, fromName, fromEmail string) *SendGridMailer {
	return &SendGridMailer{
		APIKey:    apiKey,
		FromName:  fromName,
		FromEmail: fromEmail,
	}
}

// Send delivers one message. The SendGrid client carries its own request
// timeout; a non-2xx response is reported as an error.
func (m *SendGridMailer) Send(msg Message) error {
	from := sgmail.NewEmail(m.FromName, m.FromEmail)
	to := sgmail.NewEmail("", msg.To)

	mail := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)

	client := sendgrid.NewSendClient(m.APIKey)
	resp, err := client.Send(mail)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("email API error (status %d): %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// ConsoleMailer is a mock implementation that prints messages to the log
// instead of sending them (used when no API key is configured, and in tests).
type ConsoleMailer struct{}

func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

func (m *ConsoleMailer) Send(msg Message) error {
	fmt.Printf("\n========== MOCK EMAIL ==========\n")
	fmt.Printf("To: %s\n", msg.To)
	fmt.Printf("Subject: %s\n", msg.Subject)
	fmt.Printf("%s\n", msg.Text)
	fmt.Printf("================================\n\n")
	return nil
}
