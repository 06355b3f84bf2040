package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendStatusUpdateEmail(toEmail, toName, internshipTitle, status string) error
	SendCertificateEmail(toEmail, toName, internshipTitle, certificateURL string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendStatusUpdateEmail notifies a student that their application status changed
func (s *EmailServiceImpl) SendStatusUpdateEmail(toEmail, toName, internshipTitle, status string) error {
	subject := fmt.Sprintf("Application Update - %s", internshipTitle)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour application for \"%s\" is now %s.\r\n\r\nLog in to the CIIC portal for details.\r\n",
		toName, internshipTitle, status,
	)
	return s.send(toEmail, subject, body)
}

// SendCertificateEmail notifies a student that a completion certificate is available
func (s *EmailServiceImpl) SendCertificateEmail(toEmail, toName, internshipTitle, certificateURL string) error {
	subject := fmt.Sprintf("Internship Certificate - %s", internshipTitle)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour certificate for \"%s\" has been issued:\r\n%s\r\n",
		toName, internshipTitle, certificateURL,
	)
	return s.send(toEmail, subject, body)
}

func (s *EmailServiceImpl) send(toEmail, subject, body string) error {
	// Without SMTP credentials, log the mail instead of sending (development mode)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Msg("SMTP credentials not configured - notification email not sent")
		return nil
	}

	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	from := fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	msg := []byte(
		"From: " + from + "\r\n" +
			"To: " + toEmail + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
			body,
	)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{toEmail}, msg); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send notification email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Str("subject", subject).Msg("Notification email sent")
	return nil
}
