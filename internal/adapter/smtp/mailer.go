// Package smtp delivers rendered messages through an SMTP relay.
package smtp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/sustainage/materiality-survey/internal/config"
	"github.com/sustainage/materiality-survey/internal/domain"
)

// Mailer sends one message per connection.
type Mailer struct {
	cfg    config.SMTPConfig
	client *mail.Client
}

// New creates a Mailer for the configured relay. Authentication is used
// only when a username is set.
func New(cfg config.SMTPConfig) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &Mailer{cfg: cfg, client: client}, nil
}

// Send delivers msg.
func (m *Mailer) Send(ctx context.Context, msg domain.MailMessage) error {
	out, err := buildMessage(m.cfg, msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("send to %s: %w", msg.To, err)
	}
	return nil
}

func buildMessage(cfg config.SMTPConfig, msg domain.MailMessage) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.FromFormat(cfg.FromName, cfg.From); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := out.AddToFormat(msg.ToName, msg.To); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		out.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return out, nil
}

// LogMailer records messages in the log instead of sending them. It is used
// when no relay is configured.
type LogMailer struct {
	log *slog.Logger
}

// NewLogMailer creates a LogMailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{log: logger.With("component", "mailer")}
}

// Send logs the envelope of msg.
func (m *LogMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.log.InfoContext(ctx, "mail relay disabled, message not sent",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
