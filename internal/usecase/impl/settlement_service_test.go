package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettlementService_SettleOrder_CreatesLedgerEntries(t *testing.T) {
	service, orderRepo, commissionRepo, rateRuleRepo, accountRepo, notifier := createTestSettlementService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	sellerID := uuid.New()
	order := deliveredOrder(ownerID, line(&sellerID, "electronics", "Laptop", "50.00", 3))

	rateRuleRepo.EXPECT().FindActiveRules(ctx).Return(nil, nil)
	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	commissionRepo.EXPECT().ExistsForOrder(ctx, order.ID).Return(false, nil)
	accountRepo.EXPECT().FindAccountByID(ctx, ownerID).Return(buyerAccount(ownerID), nil)
	accountRepo.EXPECT().FindAccountByID(ctx, sellerID).Return(sellerAccount(sellerID), nil)

	var created []*entity.Commission
	commissionRepo.EXPECT().CreateCommissions(ctx, mock.Anything).
		Run(func(_ context.Context, commissions []*entity.Commission) {
			created = commissions
		}).
		Return(nil)

	notifier.EXPECT().Notify(mock.Anything, sellerID, mock.Anything).Return(nil)
	notifier.EXPECT().Notify(mock.Anything, ownerID, mock.Anything).Return(nil)

	result, err := service.SettleOrder(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedCount)
	assert.False(t, result.AlreadySettled)

	require.Len(t, created, 2)
	// Seller earns the default 10% of the line total
	assert.Equal(t, sellerID, created[0].BeneficiaryID)
	assert.Equal(t, "15.00", created[0].Amount.StringFixed(2))
	assert.Equal(t, "10.00", created[0].Rate.StringFixed(2))
	// Owner earns the default buyer-side 2% of the order total
	assert.Equal(t, ownerID, created[1].BeneficiaryID)
	assert.Equal(t, "3.00", created[1].Amount.StringFixed(2))
	assert.Equal(t, "2.00", created[1].Rate.StringFixed(2))
	for _, commission := range created {
		assert.Equal(t, order.ID, commission.OrderID)
		assert.False(t, commission.IsPaid)
	}
}

func TestSettlementService_SettleOrder_AppliesConfiguredRates(t *testing.T) {
	service, orderRepo, commissionRepo, rateRuleRepo, accountRepo, notifier := createTestSettlementService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	sellerID := uuid.New()
	category := "electronics"
	order := deliveredOrder(ownerID,
		line(&sellerID, category, "Laptop", "100.00", 1),
		line(&sellerID, "books", "Novel", "20.00", 1),
	)

	rateRuleRepo.EXPECT().FindActiveRules(ctx).Return([]entity.CommissionRateRule{
		{ID: uuid.New(), Role: entity.RoleSeller, Category: &category, Rate: dec("5.00"), IsActive: true},
		{ID: uuid.New(), Role: entity.RoleSeller, Rate: dec("12.00"), IsActive: true},
		{ID: uuid.New(), Role: entity.RoleBuyer, Rate: dec("1.00"), IsActive: true},
	}, nil)
	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	commissionRepo.EXPECT().ExistsForOrder(ctx, order.ID).Return(false, nil)
	accountRepo.EXPECT().FindAccountByID(ctx, ownerID).Return(buyerAccount(ownerID), nil)
	accountRepo.EXPECT().FindAccountByID(ctx, sellerID).Return(sellerAccount(sellerID), nil)

	var created []*entity.Commission
	commissionRepo.EXPECT().CreateCommissions(ctx, mock.Anything).
		Run(func(_ context.Context, commissions []*entity.Commission) {
			created = commissions
		}).
		Return(nil)

	notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := service.SettleOrder(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedCount)

	require.Len(t, created, 2)
	// 5% of 100.00 via the category rule plus 12% of 20.00 via the general rule
	assert.Equal(t, sellerID, created[0].BeneficiaryID)
	assert.Equal(t, "7.40", created[0].Amount.StringFixed(2))
	// Mean of the two applied rates
	assert.Equal(t, "8.50", created[0].Rate.StringFixed(2))
	// 1% of the 120.00 order total via the buyer rule
	assert.Equal(t, ownerID, created[1].BeneficiaryID)
	assert.Equal(t, "1.20", created[1].Amount.StringFixed(2))
}

func TestSettlementService_SettleOrder_AlreadySettled(t *testing.T) {
	service, orderRepo, commissionRepo, rateRuleRepo, _, _ := createTestSettlementService(t)

	ctx := context.Background()
	order := deliveredOrder(uuid.New(), line(nil, "", "Mug", "12.00", 1))

	rateRuleRepo.EXPECT().FindActiveRules(ctx).Return(nil, nil)
	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	commissionRepo.EXPECT().ExistsForOrder(ctx, order.ID).Return(true, nil)

	result, err := service.SettleOrder(ctx, order.ID)

	require.NoError(t, err)
	assert.True(t, result.AlreadySettled)
	assert.Equal(t, 0, result.CreatedCount)
}

func TestSettlementService_SettleOrder_DuplicateConstraintResolvesToAlreadySettled(t *testing.T) {
	service, orderRepo, commissionRepo, rateRuleRepo, accountRepo, _ := createTestSettlementService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	sellerID := uuid.New()
	order := deliveredOrder(ownerID, line(&sellerID, "", "Desk", "80.00", 1))

	rateRuleRepo.EXPECT().FindActiveRules(ctx).Return(nil, nil)
	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	commissionRepo.EXPECT().ExistsForOrder(ctx, order.ID).Return(false, nil)
	accountRepo.EXPECT().FindAccountByID(ctx, ownerID).Return(buyerAccount(ownerID), nil)
	accountRepo.EXPECT().FindAccountByID(ctx, sellerID).Return(sellerAccount(sellerID), nil)
	commissionRepo.EXPECT().CreateCommissions(ctx, mock.Anything).Return(repository.ErrDuplicateCommission)

	result, err := service.SettleOrder(ctx, order.ID)

	require.NoError(t, err)
	assert.True(t, result.AlreadySettled)
}

func TestSettlementService_SettleOrder_NotDelivered(t *testing.T) {
	service, orderRepo, _, rateRuleRepo, _, _ := createTestSettlementService(t)

	ctx := context.Background()
	order := deliveredOrder(uuid.New(), line(nil, "", "Mug", "12.00", 1))
	order.Status = entity.OrderStatusShipped

	rateRuleRepo.EXPECT().FindActiveRules(ctx).Return(nil, nil)
	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)

	result, err := service.SettleOrder(ctx, order.ID)

	require.ErrorIs(t, err, domainerrors.ErrOrderNotDelivered)
	assert.Nil(t, result)
}

func TestSettlementService_SettleOrder_RetriesTransientFailure(t *testing.T) {
	service, orderRepo, commissionRepo, rateRuleRepo, accountRepo, notifier := createTestSettlementService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	sellerID := uuid.New()
	order := deliveredOrder(ownerID, line(&sellerID, "", "Chair", "40.00", 2))

	rateRuleRepo.EXPECT().FindActiveRules(ctx).Return(nil, nil)
	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).
		Return(nil, errors.New("connection reset")).Once()
	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil).Once()
	commissionRepo.EXPECT().ExistsForOrder(ctx, order.ID).Return(false, nil)
	accountRepo.EXPECT().FindAccountByID(ctx, ownerID).Return(buyerAccount(ownerID), nil)
	accountRepo.EXPECT().FindAccountByID(ctx, sellerID).Return(sellerAccount(sellerID), nil)
	commissionRepo.EXPECT().CreateCommissions(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := service.SettleOrder(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedCount)
}

func TestSettlementService_SettleOrder_ExhaustsRetries(t *testing.T) {
	service, orderRepo, _, rateRuleRepo, _, _ := createTestSettlementService(t)

	ctx := context.Background()
	orderID := uuid.New()

	rateRuleRepo.EXPECT().FindActiveRules(ctx).Return(nil, nil)
	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, orderID).Return(nil, errors.New("db down"))

	result, err := service.SettleOrder(ctx, orderID)

	require.ErrorIs(t, err, domainerrors.ErrSettlementUnavailable)
	assert.Nil(t, result)
	orderRepo.AssertNumberOfCalls(t, "FindOrderByIDForUpdate", 2)
}

func TestSettlementService_SettleOrder_NotifierFailureDoesNotFailSettlement(t *testing.T) {
	service, orderRepo, commissionRepo, rateRuleRepo, accountRepo, notifier := createTestSettlementService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	sellerID := uuid.New()
	order := deliveredOrder(ownerID, line(&sellerID, "", "Lamp", "25.00", 1))

	rateRuleRepo.EXPECT().FindActiveRules(ctx).Return(nil, nil)
	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	commissionRepo.EXPECT().ExistsForOrder(ctx, order.ID).Return(false, nil)
	accountRepo.EXPECT().FindAccountByID(ctx, ownerID).Return(buyerAccount(ownerID), nil)
	accountRepo.EXPECT().FindAccountByID(ctx, sellerID).Return(sellerAccount(sellerID), nil)
	commissionRepo.EXPECT().CreateCommissions(ctx, mock.Anything).Return(nil)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("gateway timeout"))

	result, err := service.SettleOrder(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedCount)
}

func TestSettlementService_SettleOrder_SellerlessLineWithNonSellerOwner(t *testing.T) {
	service, orderRepo, commissionRepo, rateRuleRepo, accountRepo, notifier := createTestSettlementService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	order := deliveredOrder(ownerID, line(nil, "", "Gift Card", "50.00", 1))

	rateRuleRepo.EXPECT().FindActiveRules(ctx).Return(nil, nil)
	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	commissionRepo.EXPECT().ExistsForOrder(ctx, order.ID).Return(false, nil)
	accountRepo.EXPECT().FindAccountByID(ctx, ownerID).Return(buyerAccount(ownerID), nil)

	var created []*entity.Commission
	commissionRepo.EXPECT().CreateCommissions(ctx, mock.Anything).
		Run(func(_ context.Context, commissions []*entity.Commission) {
			created = commissions
		}).
		Return(nil)

	notifier.EXPECT().Notify(mock.Anything, ownerID, mock.Anything).Return(nil)

	result, err := service.SettleOrder(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, result.CreatedCount)

	// No seller-side share accrues; only the buyer-side 2% on the total
	require.Len(t, created, 1)
	assert.Equal(t, ownerID, created[0].BeneficiaryID)
	assert.Equal(t, "1.00", created[0].Amount.StringFixed(2))
}

func TestSettlementService_SettleOrder_OwnerWithSellerRoleGetsOneMergedEntry(t *testing.T) {
	service, orderRepo, commissionRepo, rateRuleRepo, accountRepo, notifier := createTestSettlementService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	order := deliveredOrder(ownerID, line(nil, "", "Handmade Bowl", "100.00", 1))

	rateRuleRepo.EXPECT().FindActiveRules(ctx).Return(nil, nil)
	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	commissionRepo.EXPECT().ExistsForOrder(ctx, order.ID).Return(false, nil)
	accountRepo.EXPECT().FindAccountByID(ctx, ownerID).Return(sellerAccount(ownerID), nil)

	var created []*entity.Commission
	commissionRepo.EXPECT().CreateCommissions(ctx, mock.Anything).
		Run(func(_ context.Context, commissions []*entity.Commission) {
			created = commissions
		}).
		Return(nil)

	notifier.EXPECT().Notify(mock.Anything, ownerID, mock.Anything).Return(nil)

	result, err := service.SettleOrder(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, result.CreatedCount)

	// The seller-side 10.00 and the buyer-side 10.00 fold into one entry so
	// the (order, beneficiary) uniqueness holds
	require.Len(t, created, 1)
	assert.Equal(t, ownerID, created[0].BeneficiaryID)
	assert.Equal(t, "20.00", created[0].Amount.StringFixed(2))
	assert.Equal(t, "10.00", created[0].Rate.StringFixed(2))
}

func TestSettlementService_SettleOrder_RoundsHalfUpOnBeneficiaryTotal(t *testing.T) {
	service, orderRepo, commissionRepo, rateRuleRepo, accountRepo, notifier := createTestSettlementService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	sellerID := uuid.New()
	order := deliveredOrder(ownerID, line(&sellerID, "", "Poster", "10.10", 1))

	rateRuleRepo.EXPECT().FindActiveRules(ctx).Return([]entity.CommissionRateRule{
		{ID: uuid.New(), Role: entity.RoleSeller, Rate: dec("7.50"), IsActive: true},
	}, nil)
	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	commissionRepo.EXPECT().ExistsForOrder(ctx, order.ID).Return(false, nil)
	accountRepo.EXPECT().FindAccountByID(ctx, ownerID).Return(buyerAccount(ownerID), nil)
	accountRepo.EXPECT().FindAccountByID(ctx, sellerID).Return(sellerAccount(sellerID), nil)

	var created []*entity.Commission
	commissionRepo.EXPECT().CreateCommissions(ctx, mock.Anything).
		Run(func(_ context.Context, commissions []*entity.Commission) {
			created = commissions
		}).
		Return(nil)

	notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := service.SettleOrder(ctx, order.ID)

	require.NoError(t, err)
	require.Len(t, created, 2)
	// 7.5% of 10.10 is 0.7575 and rounds half-up to 0.76
	assert.Equal(t, "0.76", created[0].Amount.StringFixed(2))
}

func TestSettlementService_SettleOrder_UnknownAccountsFallBackToDefaults(t *testing.T) {
	service, orderRepo, commissionRepo, rateRuleRepo, accountRepo, notifier := createTestSettlementService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	sellerID := uuid.New()
	order := deliveredOrder(ownerID, line(&sellerID, "", "Cable", "10.00", 1))

	rateRuleRepo.EXPECT().FindActiveRules(ctx).Return(nil, nil)
	orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	commissionRepo.EXPECT().ExistsForOrder(ctx, order.ID).Return(false, nil)
	// Neither account has a stored profile
	accountRepo.EXPECT().FindAccountByID(ctx, ownerID).Return(nil, repository.ErrAccountNotFound)
	accountRepo.EXPECT().FindAccountByID(ctx, sellerID).Return(nil, repository.ErrAccountNotFound)

	var created []*entity.Commission
	commissionRepo.EXPECT().CreateCommissions(ctx, mock.Anything).
		Run(func(_ context.Context, commissions []*entity.Commission) {
			created = commissions
		}).
		Return(nil)

	notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := service.SettleOrder(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedCount)
	require.Len(t, created, 2)
	// Line sellers default to the seller role, owners to the buyer role
	assert.Equal(t, "1.00", created[0].Amount.StringFixed(2))
	assert.Equal(t, "0.20", created[1].Amount.StringFixed(2))
}

func TestSettlementService_GetCommissionsForOrder(t *testing.T) {
	service, _, commissionRepo, _, _, _ := createTestSettlementService(t)

	ctx := context.Background()
	orderID := uuid.New()
	expected := []*entity.Commission{{ID: uuid.New(), OrderID: orderID}}

	commissionRepo.EXPECT().FindCommissionsByOrder(ctx, orderID).Return(expected, nil)

	commissions, err := service.GetCommissionsForOrder(ctx, orderID)

	require.NoError(t, err)
	assert.Equal(t, expected, commissions)
}

func TestBuildCommissionMessage_TruncatesProductList(t *testing.T) {
	commission := &entity.Commission{
		ID:            uuid.New(),
		OrderID:       uuid.New(),
		BeneficiaryID: uuid.New(),
		Amount:        dec("12.34"),
		Rate:          dec("10.00"),
	}

	message := buildCommissionMessage(commission, []string{"Laptop", "Mouse", "Keyboard", "Monitor", "Webcam"})

	assert.Contains(t, message, "12.34")
	assert.Contains(t, message, "10.00%")
	assert.Contains(t, message, "Laptop, Mouse, Keyboard and 2 more")
	assert.NotContains(t, message, "Monitor")
}

func TestBuildCommissionMessage_ShortProductList(t *testing.T) {
	commission := &entity.Commission{
		ID:            uuid.New(),
		OrderID:       uuid.New(),
		BeneficiaryID: uuid.New(),
		Amount:        dec("5.00"),
		Rate:          dec("2.00"),
	}

	message := buildCommissionMessage(commission, []string{"Mug", "Coaster"})

	assert.Contains(t, message, "Mug, Coaster")
	assert.NotContains(t, message, "more")
}
