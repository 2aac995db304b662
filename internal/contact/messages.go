package contact

import (
	"fmt"

	"github.com/osa911/contact-api/internal/api/sanitization"
	"github.com/osa911/contact-api/internal/email"
)

// Addresses are fixed per deployment.
const (
	AdminEmail    = "rajalingammathiah2011@gmail.com"
	FromAdmin     = "Portfolio <no-reply@yourdomain.com>"
	FromUserReply = "Rajalingam <no-reply@yourdomain.com>"
)

// AdminNotification is sent to the site owner for every valid submission.
func AdminNotification(s *Submission) email.Message {
	return email.Message{
		From:    FromAdmin,
		To:      AdminEmail,
		ReplyTo: s.Email,
		Subject: "New Contact: " + sanitization.SanitizeHeader(s.Name),
		HTML: fmt.Sprintf(
			"<p><strong>From:</strong> %s (%s)</p><p><strong>Message:</strong></p><p>%s</p>",
			sanitization.EscapeHTML(s.Name),
			sanitization.EscapeHTML(s.Email),
			sanitization.EscapeHTML(s.Message),
		),
	}
}

// Confirmation acknowledges receipt to the submitter.
func Confirmation(s *Submission) email.Message {
	return email.Message{
		From:    FromUserReply,
		To:      s.Email,
		Subject: fmt.Sprintf("Thank you, %s! We received your message", sanitization.SanitizeHeader(s.Name)),
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Thank you for contacting us. We'll get back to you within 24-48 hours.</p><p>Best regards,<br>Rajalingam</p>",
			sanitization.EscapeHTML(s.Name),
		),
	}
}
