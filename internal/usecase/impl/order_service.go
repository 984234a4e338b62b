// Package impl provides the concrete usecase implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliveryctx "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	settlement usecase.SettlementUsecase
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// NewOrderService creates the order lifecycle usecase.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	settlement usecase.SettlementUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager:  txManager,
		orderRepo:  orderRepo,
		settlement: settlement,
		publisher:  publisher,
		logger:     logger,
	}
}

// TransitionOrder moves the order to newStatus under a row lock, so two
// concurrent transitions on the same order serialize and the loser revalidates
// against the committed status. The transition commits before the event is
// published and before settlement runs; neither can roll it back.
func (s *orderService) TransitionOrder(ctx context.Context, orderID uuid.UUID, newStatus entity.OrderStatus) (*entity.Order, error) {
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("unknown order status %q", newStatus)
	}

	var (
		order      *entity.Order
		fromStatus entity.OrderStatus
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		locked, err := orderRepo.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}

		fromStatus = locked.Status
		if !fromStatus.CanTransitionTo(newStatus) {
			return &domainerrors.InvalidTransitionError{From: fromStatus, To: newStatus}
		}

		if err := orderRepo.UpdateOrderStatus(ctx, orderID, newStatus); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		locked.Status = newStatus
		locked.UpdatedAt = time.Now()
		order = locked

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishTransition(ctx, orderID, fromStatus, newStatus)

	if newStatus == entity.OrderStatusDelivered {
		s.settleDelivered(ctx, orderID)
	}

	return order, nil
}

// publishTransition emits the transition event best-effort. Consumers also
// receive replays, so a lost publish is recoverable out of band.
func (s *orderService) publishTransition(ctx context.Context, orderID uuid.UUID, from, to entity.OrderStatus) {
	event := &service.OrderTransitionEvent{
		RequestID:  deliveryctx.GetRequestIDFromContext(ctx),
		OrderID:    orderID.String(),
		FromStatus: from.String(),
		ToStatus:   to.String(),
		OccurredAt: time.Now(),
	}

	if err := s.publisher.PublishTransitionEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish transition event",
			slog.String("order_id", orderID.String()),
			slog.String("from_status", from.String()),
			slog.String("to_status", to.String()),
			slog.Any("error", err),
		)
	}
}

// settleDelivered triggers settlement inline after a delivered transition.
// A failure here leaves the order delivered and unsettled; the sweeper and
// the push consumer pick it up again later.
func (s *orderService) settleDelivered(ctx context.Context, orderID uuid.UUID) {
	result, err := s.settlement.SettleOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSettlementUnavailable) {
			s.logger.Warn("settlement deferred after delivery",
				slog.String("order_id", orderID.String()),
				slog.Any("error", err),
			)

			return
		}

		s.logger.Error("settlement failed after delivery",
			slog.String("order_id", orderID.String()),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("order settled on delivery",
		slog.String("order_id", orderID.String()),
		slog.Int("created_count", result.CreatedCount),
		slog.Bool("already_settled", result.AlreadySettled),
	)
}

// GetOrder retrieves an order with its lines.
func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return s.orderRepo.FindOrderByID(ctx, orderID)
}
