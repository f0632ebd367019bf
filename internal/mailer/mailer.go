// Package mailer relays contact-form submissions through the Resend
// email API.
package mailer

import (
	"fmt"
	"html"
	"strings"

	"github.com/AtharvaZ/Portfolio-website/internal/apperr"

	"github.com/resend/resend-go/v2"
)

// Mailer sends contact notifications to the configured recipient.
type Mailer struct {
	client    *resend.Client
	from      string
	recipient string
}

// New builds a mailer. An empty API key is tolerated at construction
// time; Send reports the missing configuration per call, so the rest
// of the site works without email set up.
func New(apiKey, from, recipient string) *Mailer {
	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	}
	return &Mailer{
		client:    client,
		from:      from,
		recipient: recipient,
	}
}

// SendContact delivers one contact-form submission. Missing API key or
// recipient is apperr.ErrConfiguration; a provider failure is
// apperr.ErrDelivery.
func (m *Mailer) SendContact(name, email, message string) error {
	if m.client == nil || m.recipient == "" {
		return apperr.Wrapf(apperr.ErrConfiguration,
			"email not configured (EMAIL_SECRET_KEY / RECIPIENT_EMAIL)")
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Personal Website Contact <%s>", m.from),
		To:      []string{m.recipient},
		ReplyTo: email,
		Subject: fmt.Sprintf("New Contact Form Submission from %s", name),
		Html:    contactHTML(name, email, message),
	}

	if _, err := m.client.Emails.Send(params); err != nil {
		return apperr.Wrap(apperr.ErrDelivery, err)
	}
	return nil
}

// contactHTML renders the notification body. Visitor input is escaped;
// message line breaks become <br> like the old template.
func contactHTML(name, email, message string) string {
	msg := strings.ReplaceAll(html.EscapeString(message), "\n", "<br>")
	return fmt.Sprintf(`
	<h2>Contact Personal Website Submission</h2>
	<p>You've received a new message from your portfolio website:</p>

	<h3>Contact Information:</h3>
	<ul>
		<li><strong>Name:</strong> %s</li>
		<li><strong>Email:</strong> %s</li>
	</ul>

	<h3>Message:</h3>
	<p>%s</p>

	<hr>
	<p style="color: #666; font-size: 12px;">This email was sent from your portfolio contact form.</p>
	`, html.EscapeString(name), html.EscapeString(email), msg)
}
