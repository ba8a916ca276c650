package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendVerificationCode(email, code string, ttlMinutes int) error
	SendWelcomeEmail(email, tempPassword string) error
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

func (s *emailService) SendVerificationCode(email, code string, ttlMinutes int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "FingerTrack verification code")

	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p>Your verification code is: <strong>%s</strong></p>
		<p>It is valid for %d minutes.</p>
		<p>Best regards,<br>The FingerTrack Team</p>
	`, code, ttlMinutes)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

func (s *emailService) SendWelcomeEmail(email, tempPassword string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to FingerTrack!")

	body := fmt.Sprintf(`
		<p>Your account has been created.</p>
		<p>Temporary password: <strong>%s</strong></p>
		<p>Please change it after your first login and remember to enroll your fingerprint.</p>
		<p>Best regards,<br>The FingerTrack Team</p>
	`, tempPassword)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
