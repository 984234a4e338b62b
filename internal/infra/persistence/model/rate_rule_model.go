package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionRateRuleModel mirrors the 'commission_rate_rules' table. A NULL
// category marks the role-wide general rule; a partial unique index in the
// database keeps one active rule per (role, category) pair.
type CommissionRateRuleModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Role      string          `gorm:"type:text;not null;index"`
	Category  *string         `gorm:"type:text"`
	Rate      decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	IsActive  bool            `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommissionRateRuleModel) TableName() string {
	return "commission_rate_rules"
}
