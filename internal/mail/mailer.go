// Package mail sends the transactional emails used by the auth flows.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Sender is the outbound mail interface consumed by the user service.
type Sender interface {
	// SendVerificationMail sends the account verification link.
	SendVerificationMail(ctx context.Context, to string, username string, link string) error

	// SendPasswordResetMail sends the password reset link.
	SendPasswordResetMail(ctx context.Context, to string, username string, link string) error
}

// SMTPConfig holds the SMTP connection details.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// gomailSender sends mail over SMTP via gomail.
type gomailSender struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewSMTPSender creates a Sender backed by an SMTP server.
func NewSMTPSender(cfg SMTPConfig, logger *slog.Logger) Sender {
	return &gomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

const sendAttempts = 3

func (s *gomailSender) send(ctx context.Context, to string, subject string, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	var lastErr error
	for attempt := 1; attempt <= sendAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lastErr = s.dialer.DialAndSend(m); lastErr == nil {
			return nil
		}
		s.logger.Warn("Mail send attempt failed",
			slog.String("to", to),
			slog.Int("attempt", attempt),
			slog.String("error", lastErr.Error()))
	}
	return fmt.Errorf("failed to send mail after %d attempts: %w", sendAttempts, lastErr)
}

func (s *gomailSender) SendVerificationMail(ctx context.Context, to string, username string, link string) error {
	body := fmt.Sprintf(
		`<p>Hi %s,</p><p>Welcome! Please verify your email address by clicking the link below:</p><p><a href=%q>Verify email</a></p><p>The link expires in 24 hours.</p>`,
		username, link)
	return s.send(ctx, to, "Verify your email", body)
}

func (s *gomailSender) SendPasswordResetMail(ctx context.Context, to string, username string, link string) error {
	body := fmt.Sprintf(
		`<p>Hi %s,</p><p>We received a request to reset your password. Click the link below to choose a new one:</p><p><a href=%q>Reset password</a></p><p>The link expires in 1 hour. If you did not ask for this, ignore this mail.</p>`,
		username, link)
	return s.send(ctx, to, "Reset your password", body)
}
