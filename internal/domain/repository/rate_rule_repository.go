package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// RateRuleRepository reads commission rate configuration. Rules are managed
// by admin tooling outside this module and are read-only here; stale reads
// are acceptable.
type RateRuleRepository interface {
	// FindActiveRules retrieves all active commission rate rules.
	FindActiveRules(ctx context.Context) ([]entity.CommissionRateRule, error)
}
