package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderService(t *testing.T) (
	usecase.OrderUsecase,
	*mockRepo.MockOrderRepository,
	*mockUsecase.MockSettlementUsecase,
	*mockSvc.MockEventPublisher,
) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	settlementSvc := mockUsecase.NewMockSettlementUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	txManager := &stubTxManager{factory: &stubRepoFactory{orderRepo: orderRepo}}

	svc := NewOrderService(txManager, orderRepo, settlementSvc, publisher, logger)

	return svc, orderRepo, settlementSvc, publisher
}

func pendingOrder() *entity.Order {
	order := deliveredOrder(uuid.New(), line(nil, "", "Mug", "12.00", 1))
	order.Status = entity.OrderStatusPending

	return order
}

func TestOrderService_TransitionOrder_Success(t *testing.T) {
	svc, orderRepo, _, publisher := createTestOrderService(t)

	ctx := context.Background()
	order := pendingOrder()

	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusProcessing).Return(nil)

	var published *service.OrderTransitionEvent
	publisher.EXPECT().PublishTransitionEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *service.OrderTransitionEvent) {
			published = event
		}).
		Return(nil)

	updated, err := svc.TransitionOrder(ctx, order.ID, entity.OrderStatusProcessing)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, updated.Status)

	require.NotNil(t, published)
	assert.Equal(t, order.ID.String(), published.OrderID)
	assert.Equal(t, "pending", published.FromStatus)
	assert.Equal(t, "processing", published.ToStatus)
}

func TestOrderService_TransitionOrder_InvalidTransition(t *testing.T) {
	svc, orderRepo, _, _ := createTestOrderService(t)

	ctx := context.Background()
	order := pendingOrder()

	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)

	updated, err := svc.TransitionOrder(ctx, order.ID, entity.OrderStatusDelivered)

	require.Error(t, err)
	assert.True(t, domainerrors.IsInvalidTransition(err))
	assert.Nil(t, updated)

	var invalidErr *domainerrors.InvalidTransitionError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, entity.OrderStatusPending, invalidErr.From)
	assert.Equal(t, entity.OrderStatusDelivered, invalidErr.To)
}

func TestOrderService_TransitionOrder_UnknownStatus(t *testing.T) {
	svc, _, _, _ := createTestOrderService(t)

	updated, err := svc.TransitionOrder(context.Background(), uuid.New(), entity.OrderStatus("lost"))

	require.Error(t, err)
	assert.Nil(t, updated)
}

func TestOrderService_TransitionOrder_TerminalStateRejectsAll(t *testing.T) {
	svc, orderRepo, _, _ := createTestOrderService(t)

	ctx := context.Background()
	order := pendingOrder()
	order.Status = entity.OrderStatusCancelled

	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)

	_, err := svc.TransitionOrder(ctx, order.ID, entity.OrderStatusDispute)

	assert.True(t, domainerrors.IsInvalidTransition(err))
}

func TestOrderService_TransitionOrder_DeliveredTriggersSettlement(t *testing.T) {
	svc, orderRepo, settlementSvc, publisher := createTestOrderService(t)

	ctx := context.Background()
	order := pendingOrder()
	order.Status = entity.OrderStatusShipped

	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusDelivered).Return(nil)
	publisher.EXPECT().PublishTransitionEvent(ctx, mock.Anything).Return(nil)
	settlementSvc.EXPECT().SettleOrder(ctx, order.ID).
		Return(&usecase.SettlementResult{CreatedCount: 2}, nil)

	updated, err := svc.TransitionOrder(ctx, order.ID, entity.OrderStatusDelivered)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, updated.Status)
}

func TestOrderService_TransitionOrder_SettlementFailureDoesNotFailTransition(t *testing.T) {
	svc, orderRepo, settlementSvc, publisher := createTestOrderService(t)

	ctx := context.Background()
	order := pendingOrder()
	order.Status = entity.OrderStatusShipped

	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusDelivered).Return(nil)
	publisher.EXPECT().PublishTransitionEvent(ctx, mock.Anything).Return(nil)
	settlementSvc.EXPECT().SettleOrder(ctx, order.ID).
		Return(nil, domainerrors.ErrSettlementUnavailable)

	updated, err := svc.TransitionOrder(ctx, order.ID, entity.OrderStatusDelivered)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, updated.Status)
}

func TestOrderService_TransitionOrder_PublishFailureDoesNotFailTransition(t *testing.T) {
	svc, orderRepo, _, publisher := createTestOrderService(t)

	ctx := context.Background()
	order := pendingOrder()

	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCancelled).Return(nil)
	publisher.EXPECT().PublishTransitionEvent(ctx, mock.Anything).Return(errors.New("broker unreachable"))

	updated, err := svc.TransitionOrder(ctx, order.ID, entity.OrderStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
}

func TestOrderService_TransitionOrder_OrderNotFound(t *testing.T) {
	svc, orderRepo, _, _ := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := svc.TransitionOrder(ctx, orderID, entity.OrderStatusProcessing)

	require.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderService_GetOrder(t *testing.T) {
	svc, orderRepo, _, _ := createTestOrderService(t)

	ctx := context.Background()
	order := pendingOrder()

	orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	found, err := svc.GetOrder(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, order, found)
}
