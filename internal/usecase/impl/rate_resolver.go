package impl

import (
	"marketplace/internal/domain/entity"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Hard-coded fallback rates applied when no rule matches.
var (
	defaultSellerRate = decimal.NewFromInt(10)
	defaultBuyerRate  = decimal.NewFromInt(2)
)

type ruleKey struct {
	role     entity.Role
	category string
}

// RateResolver maps (beneficiary role, product category) to a commission
// percentage over a fixed snapshot of the configured rules. Resolution order:
// exact (role, category) rule, then the role's general rule, then the
// hard-coded defaults. It is pure and never fails; configuration gaps simply
// fall through to the next tier.
type RateResolver struct {
	specific map[ruleKey]decimal.Decimal
	general  map[entity.Role]decimal.Decimal
}

// NewRateResolver builds a resolver from a rule snapshot. Inactive rules are
// ignored. The configured uniqueness invariant guarantees at most one active
// rule per (role, category) pair; should duplicates slip in, the first one
// wins deterministically.
func NewRateResolver(rules []entity.CommissionRateRule) *RateResolver {
	active := lo.Filter(rules, func(rule entity.CommissionRateRule, _ int) bool {
		return rule.IsActive
	})

	resolver := &RateResolver{
		specific: make(map[ruleKey]decimal.Decimal, len(active)),
		general:  make(map[entity.Role]decimal.Decimal),
	}

	for _, rule := range active {
		if rule.IsGeneral() {
			if _, ok := resolver.general[rule.Role]; !ok {
				resolver.general[rule.Role] = rule.Rate
			}

			continue
		}

		key := ruleKey{role: rule.Role, category: *rule.Category}
		if _, ok := resolver.specific[key]; !ok {
			resolver.specific[key] = rule.Rate
		}
	}

	return resolver
}

// Resolve returns the commission percentage for the role and category. An
// empty category skips the specific tier and resolves the role-wide rate.
func (r *RateResolver) Resolve(role entity.Role, category string) decimal.Decimal {
	if category != "" {
		if rate, ok := r.specific[ruleKey{role: role, category: category}]; ok {
			return rate
		}
	}

	if rate, ok := r.general[role]; ok {
		return rate
	}

	switch role {
	case entity.RoleSeller:
		return defaultSellerRate
	case entity.RoleBuyer:
		return defaultBuyerRate
	default:
		return decimal.Zero
	}
}
