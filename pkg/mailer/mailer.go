package mailer

import (
	"fmt"
	"net/smtp"

	"course-platform/pkg/utils"

	"go.uber.org/zap"
)

// Mailer sends plain-text mail. Callers treat it as fire-and-forget:
// a failed send is logged at the call site and never fails the request.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		config: config,
		log:    log,
	}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)
	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\n\r\n%s", to, m.config.From, subject, body))

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, msg); err != nil {
		m.log.Warn("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	m.log.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
