// Package notify delivers alert notifications over the configured channels.
// The mail channel is the primary one; a webhook channel can be enabled
// alongside it.
package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"fleetmon/internal/model"
	"fleetmon/internal/report/text"
)

// Alert is one rendered notification ready for delivery.
type Alert struct {
	Subject string              `json:"subject"` // 告警主题
	Body    string              `json:"body"`    // 告警正文（每台主机一行）
	Hosts   []*model.HostResult `json:"hosts"`   // 触发告警的主机结果
}

// Notifier delivers one alert over a single channel.
type Notifier interface {
	// Send delivers the alert. Implementations must respect ctx cancellation.
	Send(ctx context.Context, alert *Alert) error

	// Channel returns the channel identifier, e.g. "mail".
	Channel() string
}

// Dispatcher fans one poll result out to all configured channels. When no
// host is alerting, nothing is sent.
type Dispatcher struct {
	subject   string
	notifiers []Notifier
	logger    zerolog.Logger
}

// NewDispatcher creates a dispatcher for the given channels.
func NewDispatcher(subject string, logger zerolog.Logger, notifiers ...Notifier) *Dispatcher {
	return &Dispatcher{
		subject:   subject,
		notifiers: notifiers,
		logger:    logger.With().Str("component", "dispatcher").Logger(),
	}
}

// Dispatch renders the alert batch and delivers it over every channel.
// It returns (false, nil) when the batch is empty and nothing was sent, and
// an error when hosts are alerting but no channel is configured to carry the
// alert. Delivery stops at the first channel failure so a broken relay
// surfaces instead of being half-reported.
func (d *Dispatcher) Dispatch(ctx context.Context, result *model.PollResult) (bool, error) {
	batch := result.AlertBatch()
	if len(batch) == 0 {
		d.logger.Info().Msg("no host above threshold, skipping notification")
		return false, nil
	}

	if len(d.notifiers) == 0 {
		return false, fmt.Errorf("%d host(s) alerting but no notification channel is configured", len(batch))
	}

	alert := &Alert{
		Subject: d.subject,
		Body:    text.RenderAlertBody(batch),
		Hosts:   batch,
	}

	for _, n := range d.notifiers {
		d.logger.Debug().Str("channel", n.Channel()).Int("hosts", len(batch)).Msg("sending alert")
		if err := n.Send(ctx, alert); err != nil {
			return false, fmt.Errorf("failed to send alert via %s: %w", n.Channel(), err)
		}
		d.logger.Info().Str("channel", n.Channel()).Int("hosts", len(batch)).Msg("alert sent")
	}

	return true, nil
}
