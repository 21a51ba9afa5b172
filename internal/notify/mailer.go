package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"

	"fleetmon/internal/config"
)

// Mailer delivers alerts over SMTP.
type Mailer struct {
	cfg    *config.SMTPConfig
	logger zerolog.Logger
}

// NewMailer creates a mail notifier for the given relay configuration.
func NewMailer(cfg *config.SMTPConfig, logger zerolog.Logger) *Mailer {
	return &Mailer{
		cfg:    cfg,
		logger: logger.With().Str("component", "mailer").Logger(),
	}
}

// Channel returns the channel identifier.
func (m *Mailer) Channel() string {
	return "mail"
}

// Send composes the alert message and submits it to the configured relay.
func (m *Mailer) Send(ctx context.Context, alert *Alert) error {
	msg, err := m.compose(alert)
	if err != nil {
		return err
	}

	client, err := m.client()
	if err != nil {
		return err
	}

	m.logger.Debug().
		Str("server", m.cfg.Server).
		Int("port", m.cfg.Port).
		Str("to", m.cfg.To).
		Msg("submitting alert mail")

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to submit mail to %s:%d: %w", m.cfg.Server, m.cfg.Port, err)
	}

	return nil
}

// compose builds the plain-text alert message.
func (m *Mailer) compose(alert *Alert) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", m.cfg.From, err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", m.cfg.To, err)
	}
	msg.Subject(alert.Subject)
	msg.SetBodyString(mail.TypeTextPlain, alert.Body)
	return msg, nil
}

// client builds the SMTP client. Authentication is only negotiated when a
// username is configured; internal relays commonly accept unauthenticated
// submission.
func (m *Mailer) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Server, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}
	return client, nil
}
