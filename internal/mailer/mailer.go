// Package mailer renders and sends transactional emails.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

type Message struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
}

// Sender delivers one message through a configured transport.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender sends through an SMTP relay, authenticating with the account
// that is also used as the From address.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

func NewSMTPSender(host string, port int, user, password string, logger *slog.Logger) *SMTPSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
		logger: logger,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	if msg.ToName != "" {
		m.SetAddressHeader("To", msg.To, msg.ToName)
	} else {
		m.SetHeader("To", msg.To)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.logger.Error("smtp send failed", "to", msg.To, "error", err)
			return fmt.Errorf("smtp send: %w", err)
		}
		s.logger.Info("email sent", "to", msg.To, "transport", "smtp")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
