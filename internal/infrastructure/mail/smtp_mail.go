package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/staylodge/guest-service/internal/config"
	"go.uber.org/zap"
)

// SMTPClient sends email over SMTP.
type SMTPClient struct {
	config config.EmailConfig
	logger *zap.Logger
}

// NewSMTPClient creates an SMTP mail client.
func NewSMTPClient(cfg config.EmailConfig, logger *zap.Logger) *SMTPClient {
	return &SMTPClient{
		config: cfg,
		logger: logger,
	}
}

// SendMail sends an HTML email to a single recipient.
func (m *SMTPClient) SendMail(ctx context.Context, to, subject, body string) error {
	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.SMTPHost)
	addr := fmt.Sprintf("%s:%d", m.config.SMTPHost, m.config.SMTPPort)

	headers := map[string]string{
		"From":         m.config.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"utf-8\"",
	}

	var message string
	for k, v := range headers {
		message += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	message += "\r\n" + body

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(message)); err != nil {
		m.logger.Error("Failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("Email sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)

	return nil
}
