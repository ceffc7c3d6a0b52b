package notification

import (
	"fmt"

	"bookflow/config"
	"bookflow/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends booking emails through SendGrid.
type Mailer struct{}

func (m *Mailer) send(toEmail, subject, body string) error {
	cfg := config.AppConfig
	if cfg.SendgridAPIKey == "" || cfg.SendgridFromEmail == "" {
		return fmt.Errorf("sendgrid is not configured")
	}

	from := mail.NewEmail(cfg.SendgridFromName, cfg.SendgridFromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(cfg.SendgridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendConfirmationEmail delivers the booking confirmation.
func (m *Mailer) SendConfirmationEmail(payload models.ConfirmationPayload) error {
	body := fmt.Sprintf("Your appointment on %s is confirmed.", payload.StartTime)
	return m.send(payload.ContactEmail, "Appointment confirmed", body)
}

// SendReminderEmail delivers the day-before reminder.
func (m *Mailer) SendReminderEmail(payload models.ConfirmationPayload) error {
	body := fmt.Sprintf("Reminder: you have an appointment on %s.", payload.StartTime)
	return m.send(payload.ContactEmail, "Appointment reminder", body)
}
