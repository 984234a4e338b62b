package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionModel mirrors the 'commissions' table. The composite unique index
// on (order_id, beneficiary_id) enforces at most one ledger entry per
// beneficiary per order at the database level.
type CommissionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_commissions_order_beneficiary"`
	BeneficiaryID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_commissions_order_beneficiary;index"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Rate          decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	IsPaid        bool            `gorm:"not null;default:false"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommissionModel) TableName() string {
	return "commissions"
}
