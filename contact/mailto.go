// Package contact formats the contact form's hand-off to the visitor's mail
// client. Nothing is sent server-side and there is no delivery confirmation;
// the contract ends at "open this mailto URL".
package contact

import (
	"fmt"
	"net/url"
	"strings"
)

const defaultSubject = "Contact Form Submission"

// Message is a contact form submission.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// MailtoURL builds the mailto URL for a submission. An empty subject falls
// back to the same default the contact form always used.
func MailtoURL(recipient string, msg Message) string {
	subject := strings.TrimSpace(msg.Subject)
	if subject == "" {
		subject = defaultSubject
	}

	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", msg.Name, msg.Email, msg.Body)

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		recipient,
		url.QueryEscape(subject),
		url.QueryEscape(body),
	)
}
