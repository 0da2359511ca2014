package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendOtpEmail(email, code string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService builds the SMTP dialer once at process start; the dialer
// holds host and credentials for the process lifetime.
func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendOtpEmail(email, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "MPIN Reset OTP")

	body := fmt.Sprintf(`
		<h3>MPIN reset requested</h3>
		<p>Use the following one-time code to reset your MPIN:</p>
		<h2><strong>%s</strong></h2>
		<p>The code is valid for 10 minutes.</p>
		<p>If you did not request this change, you can ignore this email.</p>
	`, code)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	return nil
}
