// Package email delivers the rendered digest to the configured recipient
// over an authenticated SMTP session with an opportunistic STARTTLS upgrade.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"

	"github.com/jonathan/news-digest/internal/config"
)

// dialTimeout bounds the SMTP connection attempt. One attempt per run,
// no retries.
const dialTimeout = 30 * time.Second

// Sender transmits one HTML email per run.
type Sender struct {
	cfg    config.Config
	logger *logrus.Entry
}

// NewSender creates a Sender for the given configuration.
func NewSender(cfg config.Config, logger *logrus.Entry) *Sender {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Sender{cfg: cfg, logger: logger}
}

// Send builds a message with an HTML body plus Subject, From, To and Date
// headers, then dials the relay, upgrades via STARTTLS, authenticates and
// performs a single send. The session is closed even when transmission
// fails partway; the underlying cause is logged and returned.
func (s *Sender) Send(ctx context.Context, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.EmailFrom); err != nil {
		return fmt.Errorf("invalid from address %q: %w", s.cfg.EmailFrom, err)
	}
	if err := msg.To(s.cfg.EmailTo); err != nil {
		return fmt.Errorf("invalid to address %q: %w", s.cfg.EmailTo, err)
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(s.cfg.SMTPServer,
		mail.WithPort(s.cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.EmailFrom),
		mail.WithPassword(s.cfg.SMTPPassword),
		mail.WithTimeout(dialTimeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"server": s.cfg.SMTPServer,
			"to":     s.cfg.EmailTo,
		}).Error("error sending email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.WithField("to", s.cfg.EmailTo).Info("email sent successfully")
	return nil
}
