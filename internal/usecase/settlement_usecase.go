package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// SettlementResult reports the outcome of a settlement pass.
type SettlementResult struct {
	// CreatedCount is the number of ledger entries written by this pass.
	CreatedCount int
	// AlreadySettled is true when a previous pass had written entries and
	// this call was an idempotent no-op.
	AlreadySettled bool
}

// SettlementUsecase computes and persists commission ledger entries for
// delivered orders, exactly once per order. Safe to call any number of
// times, sequentially or concurrently.
type SettlementUsecase interface {
	// SettleOrder runs one settlement pass for the order. It returns
	// ErrOrderNotDelivered when the order has not reached delivered status
	// and ErrSettlementUnavailable when a transient storage condition
	// persisted through the bounded retries.
	SettleOrder(ctx context.Context, orderID uuid.UUID) (*SettlementResult, error)

	// GetCommissionsForOrder lists the ledger entries of one order.
	GetCommissionsForOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Commission, error)

	// GetCommissionsForBeneficiary lists the ledger entries credited to one
	// beneficiary.
	GetCommissionsForBeneficiary(ctx context.Context, beneficiaryID uuid.UUID) ([]*entity.Commission, error)
}
