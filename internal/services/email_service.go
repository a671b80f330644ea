package services

import (
	"fmt"
	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendWelcomeEmail(email, username string) error
	SendVerificationCodeEmail(email, caregiverName, code string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendWelcomeEmail(email, username string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to BrainHealth!")

	body := fmt.Sprintf(`
		<h2>Welcome to BrainHealth, %s!</h2>
		<p>Your account has been successfully created.</p>
		<p>Track your lifestyle, take cognitive tests and keep an eye on your brain health score.</p>
		<p>Best regards,<br>The BrainHealth Team</p>
	`, username)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}

// SendVerificationCodeEmail — код уходит пациенту, не опекуну.
func (s *emailService) SendVerificationCodeEmail(email, caregiverName, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Caregiver access request")

	body := fmt.Sprintf(`
		<h3>Caregiver access request</h3>
		<p>%s wants to be linked to your BrainHealth account as a caregiver.</p>
		<p>If you approve, share this code with them: <strong>%s</strong></p>
		<p>The code expires in 15 minutes. If you don't know this person, ignore this email.</p>
	`, caregiverName, code)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send verification code email: %w", err)
	}

	return nil
}
