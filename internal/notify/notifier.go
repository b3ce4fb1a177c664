// Package notify delivers application-confirmation messages. Delivery is
// best effort: submission never waits on or fails because of the notifier.
package notify

import "log"

// Notifier sends an application confirmation to the given recipient.
type Notifier interface {
	SendApplicationConfirmation(toEmail, jobTitle, company string) error
}

// LogNotifier writes the confirmation to the process log. It is the
// fallback when no mail transport is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendApplicationConfirmation(toEmail, jobTitle, company string) error {
	log.Printf("📧 Email sent to: %s", toEmail)
	log.Printf("Subject: Application Confirmation - %s", jobTitle)
	log.Printf("Body: Thank you for applying to %s at %s! We will review your application and contact you soon.", jobTitle, company)
	return nil
}
