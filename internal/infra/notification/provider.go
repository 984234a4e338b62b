package notification

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// logNotifier writes each notification to the structured log. It serves as
// the development fallback when no delivery channel is configured.
type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) Notify(ctx context.Context, beneficiaryID uuid.UUID, message string) error {
	n.logger.InfoContext(ctx, "[LogNotifier] Notification",
		slog.String("beneficiary_id", beneficiaryID.String()),
		slog.String("message", message),
	)

	return nil
}

// NotifierParams holds dependencies for Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates a Notifier based on configuration
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Notifier
	logger := params.Logger

	// If no notifier is configured, fall back to logging
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.NotifierProviderLog {
		logger.Info("Notifier not configured, using log notifier")

		return &logNotifier{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.NotifierProviderWebhook:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for webhook notifier")
		}
		logger.Info("Using webhook notifier",
			slog.String("endpoint", cfg.Endpoint),
		)

		return NewWebhookNotifier(cfg.Endpoint, cfg.Timeout, logger), nil

	default:
		return nil, errors.Errorf("unknown notifier provider: %s", cfg.Provider)
	}
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
