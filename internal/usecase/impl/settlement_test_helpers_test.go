package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// stubRepoFactory hands the test's mock repositories to transactional code.
type stubRepoFactory struct {
	orderRepo      repository.OrderRepository
	commissionRepo repository.CommissionRepository
}

func (f *stubRepoFactory) NewOrderRepository() repository.OrderRepository {
	return f.orderRepo
}

func (f *stubRepoFactory) NewCommissionRepository() repository.CommissionRepository {
	return f.commissionRepo
}

// stubTxManager runs the callback directly, without a real transaction.
type stubTxManager struct {
	factory *stubRepoFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

func createTestSettlementService(t *testing.T) (
	usecase.SettlementUsecase,
	*mockRepo.MockOrderRepository,
	*mockRepo.MockCommissionRepository,
	*mockRepo.MockRateRuleRepository,
	*mockRepo.MockAccountRepository,
	*mockSvc.MockNotifier,
) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	commissionRepo := mockRepo.NewMockCommissionRepository(t)
	rateRuleRepo := mockRepo.NewMockRateRuleRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	notifier := mockSvc.NewMockNotifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	txManager := &stubTxManager{factory: &stubRepoFactory{
		orderRepo:      orderRepo,
		commissionRepo: commissionRepo,
	}}

	service := NewSettlementService(
		txManager,
		commissionRepo,
		rateRuleRepo,
		accountRepo,
		notifier,
		logger,
		2,
		time.Millisecond,
		time.Second,
	)

	return service, orderRepo, commissionRepo, rateRuleRepo, accountRepo, notifier
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sellerAccount(id uuid.UUID) *entity.Account {
	return &entity.Account{ID: id, Email: "seller@example.com", Role: entity.RoleSeller}
}

func buyerAccount(id uuid.UUID) *entity.Account {
	return &entity.Account{ID: id, Email: "buyer@example.com", Role: entity.RoleBuyer}
}

// deliveredOrder builds a delivered order whose total matches its lines.
func deliveredOrder(ownerID uuid.UUID, lines ...entity.OrderLine) *entity.Order {
	order := &entity.Order{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Status:  entity.OrderStatusDelivered,
		Lines:   lines,
	}
	order.TotalAmount = order.LinesTotal()

	return order
}

func line(sellerID *uuid.UUID, category, productName, unitPrice string, quantity int) entity.OrderLine {
	return entity.OrderLine{
		ID:          uuid.New(),
		ProductID:   uuid.New(),
		ProductName: productName,
		Category:    category,
		SellerID:    sellerID,
		UnitPrice:   dec(unitPrice),
		Quantity:    quantity,
	}
}
