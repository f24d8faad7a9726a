package notifier

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/bitwise-notes/internal/config"
	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/utils"
	"github.com/MKhiriev/bitwise-notes/models"
)

// notifyShareEndpoint is the notification service route for share events.
const notifyShareEndpoint = "/notify/share"

type httpSender struct {
	client *utils.HTTPClient

	authToken string

	logger *logger.Logger
}

// NewHTTPSender constructs an HTTP implementation of [Sender].
// It normalises and validates the base URL from cfg.Address and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid URL.
func NewHTTPSender(cfg config.Notifier, logger *logger.Logger) (Sender, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid notifier address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpSender{client: client, authToken: cfg.AuthToken, logger: logger}, nil
}

// Send implements [Sender]. It POSTs the notification payload as JSON to the
// notification service, attaching the configured bearer token.
func (h *httpSender) Send(ctx context.Context, notification models.ShareNotification) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.authToken).
		SetBody(notification).
		Post(notifyShareEndpoint)
	if err != nil {
		return fmt.Errorf("share notification request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: %s", ErrNotificationRejected, resp.Status())
	}

	return nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
