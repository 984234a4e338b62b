package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rateRuleRepository implements the repository.RateRuleRepository interface.
type rateRuleRepository struct {
	db *gorm.DB
}

// NewRateRuleRepository is the constructor for rateRuleRepository.
func NewRateRuleRepository(db *gorm.DB) repository.RateRuleRepository {
	return &rateRuleRepository{
		db: db,
	}
}

// FindActiveRules retrieves the active rate rules as one snapshot.
func (repo *rateRuleRepository) FindActiveRules(ctx context.Context) ([]entity.CommissionRateRule, error) {
	var ruleModels []*model.CommissionRateRuleModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active rate rules")
	}

	rules := make([]entity.CommissionRateRule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rules = append(rules, entity.CommissionRateRule{
			ID:        ruleM.ID,
			Role:      entity.Role(ruleM.Role),
			Category:  ruleM.Category,
			Rate:      ruleM.Rate,
			IsActive:  ruleM.IsActive,
			CreatedAt: ruleM.CreatedAt,
			UpdatedAt: ruleM.UpdatedAt,
		})
	}

	return rules, nil
}
