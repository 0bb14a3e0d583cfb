package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer implements Mailer using SendGrid dynamic templates.
type SendGridMailer struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// NewSendGridMailer creates a Mailer backed by SendGrid.
func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	return &SendGridMailer{
		APIKey:    apiKey,
		FromEmail: fromEmail,
		FromName:  fromName,
	}
}

// Send delivers a templated message through SendGrid. A non-2xx provider
// response is treated as a failure.
func (m *SendGridMailer) Send(msg Message) (*Result, error) {
	v3 := mail.NewV3Mail()
	v3.SetFrom(mail.NewEmail(m.FromName, m.FromEmail))
	v3.SetTemplateID(msg.TemplateID)

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", msg.To))
	for key, value := range msg.Data {
		p.SetDynamicTemplateData(key, value)
	}
	v3.AddPersonalizations(p)

	client := sendgrid.NewSendClient(m.APIKey)
	resp, err := client.Send(v3)
	if err != nil {
		return nil, fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sendgrid rejected message: status %d: %s", resp.StatusCode, resp.Body)
	}

	messageID := ""
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}
	return &Result{MessageID: messageID, StatusCode: resp.StatusCode}, nil
}
