// Package sweeper re-settles delivered orders that missed their settlement
// pass, closing the gap left by lost events and transient storage failures.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSweepInterval  = time.Minute
	defaultSweepBatchSize = 100
)

type sweeper struct {
	logger        *slog.Logger
	orderRepo     repository.OrderRepository
	settlementSvc usecase.SettlementUsecase
	interval      time.Duration
	batchSize     int
}

// Params holds dependencies for the sweeper
type Params struct {
	fx.In

	Cfg           *config.Config
	Logger        *slog.Logger
	OrderRepo     repository.OrderRepository
	SettlementSvc usecase.SettlementUsecase
}

// New creates the settlement sweeper. It returns nil when sweeping is
// disabled in the configuration; the entrypoint skips nil deliveries.
func New(params Params) delivery.Delivery {
	sweepCfg := params.Cfg.Settlement.Sweep
	if sweepCfg == nil || !sweepCfg.Enabled {
		params.Logger.Info("Settlement sweeper disabled")

		return nil
	}

	interval := sweepCfg.Interval
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	batchSize := sweepCfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultSweepBatchSize
	}

	return &sweeper{
		logger:        params.Logger,
		orderRepo:     params.OrderRepo,
		settlementSvc: params.SettlementSvc,
		interval:      interval,
		batchSize:     batchSize,
	}
}

// Serve runs the sweep loop until the context is cancelled.
func (s *sweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting settlement sweeper",
		slog.Duration("interval", s.interval),
		slog.Int("batch_size", s.batchSize),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Stopping settlement sweeper")

			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep settles one batch of delivered orders without ledger entries.
func (s *sweeper) sweep(ctx context.Context) {
	orderIDs, err := s.orderRepo.FindUnsettledDeliveredOrders(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("[Sweeper] Failed to list unsettled orders", slog.Any("error", err))

		return
	}

	if len(orderIDs) == 0 {
		return
	}

	s.logger.Info("[Sweeper] Found unsettled delivered orders",
		slog.Int("count", len(orderIDs)),
	)

	var settled int
	for _, orderID := range orderIDs {
		result, err := s.settlementSvc.SettleOrder(ctx, orderID)
		if err != nil {
			s.logger.Warn("[Sweeper] Failed to settle order",
				slog.String("order_id", orderID.String()),
				slog.Any("error", err),
			)
			// Storage trouble affects the whole batch; try again next tick.
			if errors.Is(err, domainerrors.ErrSettlementUnavailable) {
				return
			}

			continue
		}

		if !result.AlreadySettled {
			settled++
		}
	}

	s.logger.Info("[Sweeper] Sweep finished",
		slog.Int("settled", settled),
		slog.Int("scanned", len(orderIDs)),
	)
}
