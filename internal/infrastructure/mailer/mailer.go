package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"e-commerce.backend/internal/config"
	"e-commerce.backend/internal/domain/entities"
	"e-commerce.backend/pkg/logger"
)

// Sender delivers one email
type Sender interface {
	Send(ctx context.Context, msg entities.EmailMessage) error
}

var dialAndSend = func(d *gomail.Dialer, m ...*gomail.Message) error {
	return d.DialAndSend(m...)
}

// SMTPSender sends through an SMTP relay. Port 465 implies implicit TLS.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates an SMTP sender from mail settings
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send implements Sender
func (s *SMTPSender) Send(_ context.Context, msg entities.EmailMessage) error {
	from := msg.From
	if from == "" {
		from = s.from
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.Content)

	if err := dialAndSend(s.dialer, m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

// LogSender only logs emails. Used when no SMTP host is configured.
type LogSender struct{}

// Send implements Sender
func (LogSender) Send(ctx context.Context, msg entities.EmailMessage) error {
	logger.Info(ctx, "Email (not sent, SMTP disabled)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("content", msg.Content),
	)
	return nil
}

// New picks the SMTP sender when a host is configured
func New(cfg config.MailConfig) Sender {
	if cfg.Host == "" {
		return LogSender{}
	}
	return NewSMTPSender(cfg)
}
