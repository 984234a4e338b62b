package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Commission is an immutable ledger entry crediting one beneficiary for one
// order. Amount and rate are never updated after creation; only the paid flag
// is mutated, by the payout process.
type Commission struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	BeneficiaryID uuid.UUID       `json:"beneficiary_id"`
	Amount        decimal.Decimal `json:"amount"` // Final amount, rounded half-up to 2 fraction digits.
	Rate          decimal.Decimal `json:"rate"`   // Rate applied; arithmetic mean when several lines contributed.
	IsPaid        bool            `json:"is_paid"`
	CreatedAt     time.Time       `json:"created_at"`
}
