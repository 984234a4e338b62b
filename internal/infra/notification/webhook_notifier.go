// Package notification provides the outbound beneficiary notification channels.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliveryctx "marketplace/internal/delivery/context"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultWebhookTimeout = 10 * time.Second

// webhookNotifier implements Notifier by posting each message to an HTTP
// endpoint, typically an internal notification gateway.
type webhookNotifier struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// webhookPayload is the JSON body posted for each notification.
type webhookPayload struct {
	BeneficiaryID string `json:"beneficiary_id"`
	Message       string `json:"message"`
	SentAt        string `json:"sent_at"`
}

// NewWebhookNotifier creates a webhook-backed notifier. A non-positive timeout
// falls back to the default.
func NewWebhookNotifier(endpoint string, timeout time.Duration, logger *slog.Logger) service.Notifier {
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}

	return &webhookNotifier{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Notify posts the message to the configured endpoint. Any non-2xx response
// counts as a failure; the caller decides whether that matters.
func (n *webhookNotifier) Notify(ctx context.Context, beneficiaryID uuid.UUID, message string) error {
	body, err := json.Marshal(webhookPayload{
		BeneficiaryID: beneficiaryID.String(),
		Message:       message,
		SentAt:        time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	if requestID := deliveryctx.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliveryctx.HeaderXRequestID, requestID)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("notification endpoint returned non-success status: %d", resp.StatusCode)
	}

	n.logger.Debug("[WebhookNotifier] Notification delivered",
		slog.String("beneficiary_id", beneficiaryID.String()),
	)

	return nil
}
