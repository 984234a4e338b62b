package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateCommission is returned when a ledger write collides with the
// unique (order, beneficiary) constraint. The settlement engine treats it as
// "already settled".
var ErrDuplicateCommission = errors.New("commission already exists for order and beneficiary")

// CommissionRepository defines the interface for the commission ledger store.
// Ledger rows are append-only; nothing here updates or deletes them.
type CommissionRepository interface {
	// ExistsForOrder reports whether any ledger entry references the order.
	// This is the settlement idempotency guard.
	ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error)

	// CreateCommissions persists a batch of ledger entries.
	CreateCommissions(ctx context.Context, commissions []*entity.Commission) error

	// FindCommissionsByOrder retrieves all ledger entries for an order.
	FindCommissionsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Commission, error)

	// FindCommissionsByBeneficiary retrieves all ledger entries credited to a
	// beneficiary.
	FindCommissionsByBeneficiary(ctx context.Context, beneficiaryID uuid.UUID) ([]*entity.Commission, error)
}
