// utils/email.go
package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService handles sending notification emails using SendGrid. When no
// API key is configured the service is a logging no-op, so local development
// works without an account.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService() *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY is not set; email notifications disabled")
		return &EmailService{}
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, content string) error {
	if es.client == nil {
		log.Printf("email disabled, skipping %q to %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("Campus Laundry", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, content, content)

	response, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: status %d", response.StatusCode)
	}
	return nil
}

// SendWelcomeEmail greets a newly registered user
func (es *EmailService) SendWelcomeEmail(toEmail, fullName string) error {
	subject := "Welcome to Campus Laundry"
	content := fmt.Sprintf("Dear %s,\n\nYour account has been created. You can now drop off laundry and track it from your dashboard.\n", fullName)
	return es.SendEmail(toEmail, subject, content)
}

// SendLaundryReadyEmail notifies a user that their laundry is ready for pickup
func (es *EmailService) SendLaundryReadyEmail(toEmail, bagCode string) error {
	subject := "Laundry Ready for Pickup"
	content := "Your laundry is ready for pickup."
	if bagCode != "" {
		content = fmt.Sprintf("Your laundry is ready for pickup. Bag code: %s.", bagCode)
	}
	return es.SendEmail(toEmail, subject, content)
}

// SendComplaintResolvedEmail notifies a user that their complaint was resolved
func (es *EmailService) SendComplaintResolvedEmail(toEmail, response string) error {
	subject := "Your Complaint Has Been Resolved"
	content := "Your complaint has been resolved."
	if response != "" {
		content = fmt.Sprintf("Your complaint has been resolved.\n\nStaff response: %s\n", response)
	}
	return es.SendEmail(toEmail, subject, content)
}
