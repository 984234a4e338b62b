package impl

import (
	"testing"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func rule(role entity.Role, category string, rate string, active bool) entity.CommissionRateRule {
	r := entity.CommissionRateRule{
		ID:       uuid.New(),
		Role:     role,
		Rate:     dec(rate),
		IsActive: active,
	}
	if category != "" {
		r.Category = &category
	}

	return r
}

func TestRateResolver_SpecificRuleWinsOverGeneral(t *testing.T) {
	resolver := NewRateResolver([]entity.CommissionRateRule{
		rule(entity.RoleSeller, "electronics", "5.00", true),
		rule(entity.RoleSeller, "", "12.00", true),
	})

	assert.Equal(t, "5.00", resolver.Resolve(entity.RoleSeller, "electronics").StringFixed(2))
	assert.Equal(t, "12.00", resolver.Resolve(entity.RoleSeller, "books").StringFixed(2))
}

func TestRateResolver_InactiveRulesIgnored(t *testing.T) {
	resolver := NewRateResolver([]entity.CommissionRateRule{
		rule(entity.RoleSeller, "electronics", "5.00", false),
		rule(entity.RoleSeller, "", "12.00", false),
	})

	// Both rules are inactive, so the hard-coded seller default applies
	assert.Equal(t, "10.00", resolver.Resolve(entity.RoleSeller, "electronics").StringFixed(2))
}

func TestRateResolver_Defaults(t *testing.T) {
	resolver := NewRateResolver(nil)

	assert.Equal(t, "10.00", resolver.Resolve(entity.RoleSeller, "toys").StringFixed(2))
	assert.Equal(t, "2.00", resolver.Resolve(entity.RoleBuyer, "").StringFixed(2))
	assert.True(t, resolver.Resolve(entity.RoleManager, "toys").IsZero())
}

func TestRateResolver_EmptyCategorySkipsSpecificTier(t *testing.T) {
	resolver := NewRateResolver([]entity.CommissionRateRule{
		rule(entity.RoleBuyer, "electronics", "9.00", true),
		rule(entity.RoleBuyer, "", "1.50", true),
	})

	// An empty category resolves the role-wide rate even when specific rules exist
	assert.Equal(t, "1.50", resolver.Resolve(entity.RoleBuyer, "").StringFixed(2))
}

func TestRateResolver_RoleSeparation(t *testing.T) {
	resolver := NewRateResolver([]entity.CommissionRateRule{
		rule(entity.RoleSeller, "electronics", "5.00", true),
	})

	// A seller rule never leaks into buyer resolution
	assert.Equal(t, "2.00", resolver.Resolve(entity.RoleBuyer, "electronics").StringFixed(2))
}
