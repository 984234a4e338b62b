package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/google/uuid"
)

// CommissionRateRule configures the commission percentage for a beneficiary
// role, optionally narrowed to a product category. A nil category means the
// rule applies to every category for that role. At most one active rule may
// exist per (role, category) pair; the admin tooling enforces that.
type CommissionRateRule struct {
	ID        uuid.UUID       `json:"id"`
	Role      Role            `json:"role"`
	Category  *string         `json:"category"` // Nil is the role-wide general rule.
	Rate      decimal.Decimal `json:"rate"`     // Percentage with 2 fraction digits.
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsGeneral reports whether the rule applies to all categories of its role.
func (r CommissionRateRule) IsGeneral() bool {
	return r.Category == nil
}
