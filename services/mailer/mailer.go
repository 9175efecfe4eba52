package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"lightfield/config"
	"lightfield/models"
)

// SMTPMailer sends transactional booking emails over plain SMTP.
type SMTPMailer struct{}

// NewSMTPMailer returns a mailer backed by the configured SMTP account.
func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (m *SMTPMailer) send(to []string, subject, htmlBody string) error {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP host not configured")
	}

	var msg strings.Builder
	msg.WriteString("From: " + cfg.SMTPFrom + "\r\n")
	msg.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(htmlBody)

	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	if err := smtp.SendMail(addr, auth, cfg.SMTPFrom, to, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendBookingConfirmation emails the client after a verified payment.
func (m *SMTPMailer) SendBookingConfirmation(b *models.ConsultationBooking) error {
	subject := fmt.Sprintf("Consultation booking confirmed - %s", b.Reference)
	service := b.ServiceName
	if service == "" {
		service = b.CustomServiceDescription
	}
	body := fmt.Sprintf(`
<h2>Your consultation is booked</h2>
<p>Dear %s,</p>
<p>Your payment has been received and your consultation is confirmed.</p>
<table>
  <tr><td><strong>Reference</strong></td><td>%s</td></tr>
  <tr><td><strong>Service</strong></td><td>%s</td></tr>
  <tr><td><strong>Preferred date</strong></td><td>%s</td></tr>
  <tr><td><strong>Preferred time</strong></td><td>%s</td></tr>
</table>
<p>Our team will reach out shortly to finalize the schedule. You can check your
booking status any time at %s/consultations/booking/%s.</p>
<p>LightField Legal Practitioners</p>`,
		b.ClientName, b.Reference, service, b.PreferredDate, b.PreferredTime,
		config.AppConfig.SiteBaseURL, b.Reference)
	return m.send([]string{b.ClientEmail}, subject, body)
}

// SendAdminNotification alerts staff about a newly paid booking.
func (m *SMTPMailer) SendAdminNotification(b *models.ConsultationBooking) error {
	if config.AppConfig.AdminEmail == "" {
		return nil
	}
	subject := fmt.Sprintf("New paid booking %s from %s", b.Reference, b.ClientName)
	service := b.ServiceName
	if service == "" {
		service = b.CustomServiceDescription
	}
	body := fmt.Sprintf(`
<h2>New paid consultation booking</h2>
<table>
  <tr><td><strong>Reference</strong></td><td>%s</td></tr>
  <tr><td><strong>Client</strong></td><td>%s (%s)</td></tr>
  <tr><td><strong>Phone</strong></td><td>%s</td></tr>
  <tr><td><strong>Service</strong></td><td>%s</td></tr>
  <tr><td><strong>Preferred</strong></td><td>%s %s</td></tr>
  <tr><td><strong>Amount</strong></td><td>%d %s</td></tr>
</table>`,
		b.Reference, b.ClientName, b.ClientEmail, b.ClientPhone, service,
		b.PreferredDate, b.PreferredTime, b.Amount, b.Currency)
	return m.send([]string{config.AppConfig.AdminEmail}, subject, body)
}
