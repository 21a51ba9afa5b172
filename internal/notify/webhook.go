package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"fleetmon/internal/config"
)

// Webhook posts alerts as JSON to a configured HTTP endpoint.
type Webhook struct {
	url        string
	httpClient *resty.Client
	logger     zerolog.Logger
}

// NewWebhook creates a webhook notifier.
func NewWebhook(cfg *config.WebhookConfig, logger zerolog.Logger) *Webhook {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	baseDelay := cfg.Retry.BaseDelay
	if baseDelay == 0 {
		baseDelay = 1 * time.Second
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(cfg.Retry.MaxRetries).
		SetRetryWaitTime(baseDelay).
		SetRetryMaxWaitTime(baseDelay * 8).
		AddRetryCondition(retryCondition)

	return &Webhook{
		url:        cfg.URL,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "webhook").Logger(),
	}
}

// retryCondition determines whether a request should be retried.
// Only retry on timeout, 5xx errors, or connection failures.
// Do not retry on 4xx errors.
func retryCondition(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp != nil && resp.StatusCode() >= 500 {
		return true
	}
	return false
}

// Channel returns the channel identifier.
func (w *Webhook) Channel() string {
	return "webhook"
}

// Send posts the alert to the endpoint. Any 2xx response counts as
// delivered.
func (w *Webhook) Send(ctx context.Context, alert *Alert) error {
	resp, err := w.httpClient.R().
		SetContext(ctx).
		SetBody(alert).
		Post(w.url)

	if err != nil {
		w.logger.Error().Err(err).Msg("failed to post alert")
		return fmt.Errorf("failed to post alert: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		w.logger.Error().
			Int("status_code", resp.StatusCode()).
			Str("body", string(resp.Body())).
			Msg("webhook returned non-2xx status")
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return nil
}
