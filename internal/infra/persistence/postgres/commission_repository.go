package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commissionRepository implements the repository.CommissionRepository interface.
type commissionRepository struct {
	db *gorm.DB
}

// NewCommissionRepository is the constructor for commissionRepository.
func NewCommissionRepository(db *gorm.DB) repository.CommissionRepository {
	return &commissionRepository{
		db: db,
	}
}

// ExistsForOrder reports whether the order already has any ledger entries.
func (repo *commissionRepository) ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CommissionModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check commissions for order")
	}

	return count > 0, nil
}

// CreateCommissions persists the full set of ledger entries of one settlement
// pass. A unique constraint violation on (order_id, beneficiary_id) is mapped
// to ErrDuplicateCommission so the caller can treat the pass as already done.
func (repo *commissionRepository) CreateCommissions(ctx context.Context, commissions []*entity.Commission) error {
	if len(commissions) == 0 {
		return nil
	}

	commissionModels := make([]*model.CommissionModel, 0, len(commissions))
	for _, commission := range commissions {
		commissionModels = append(commissionModels, fromCommissionDomain(commission))
	}

	if err := repo.db.WithContext(ctx).Create(commissionModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCommission
		}

		return errors.Wrap(err, "failed to create commissions")
	}

	// Update the entities with generated values
	for i, commission := range commissions {
		commission.ID = commissionModels[i].ID
		commission.CreatedAt = commissionModels[i].CreatedAt
	}

	return nil
}

// FindCommissionsByOrder retrieves all ledger entries of one order.
func (repo *commissionRepository) FindCommissionsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Commission, error) {
	var commissionModels []*model.CommissionModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&commissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find commissions by order")
	}

	return toCommissionDomains(commissionModels), nil
}

// FindCommissionsByBeneficiary retrieves all ledger entries credited to one
// beneficiary, newest first.
func (repo *commissionRepository) FindCommissionsByBeneficiary(ctx context.Context, beneficiaryID uuid.UUID) ([]*entity.Commission, error) {
	var commissionModels []*model.CommissionModel

	if err := repo.db.WithContext(ctx).
		Where("beneficiary_id = ?", beneficiaryID).
		Order("created_at DESC").
		Find(&commissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find commissions by beneficiary")
	}

	return toCommissionDomains(commissionModels), nil
}

func toCommissionDomains(commissionModels []*model.CommissionModel) []*entity.Commission {
	commissions := make([]*entity.Commission, 0, len(commissionModels))
	for _, commissionM := range commissionModels {
		commissions = append(commissions, toCommissionDomain(commissionM))
	}

	return commissions
}

// toCommissionDomain converts a GORM commission model to a domain entity.
func toCommissionDomain(data *model.CommissionModel) *entity.Commission {
	return &entity.Commission{
		ID:            data.ID,
		OrderID:       data.OrderID,
		BeneficiaryID: data.BeneficiaryID,
		Amount:        data.Amount,
		Rate:          data.Rate,
		IsPaid:        data.IsPaid,
		CreatedAt:     data.CreatedAt,
	}
}

// fromCommissionDomain converts a domain entity to a GORM commission model.
func fromCommissionDomain(data *entity.Commission) *model.CommissionModel {
	return &model.CommissionModel{
		ID:            data.ID,
		OrderID:       data.OrderID,
		BeneficiaryID: data.BeneficiaryID,
		Amount:        data.Amount,
		Rate:          data.Rate,
		IsPaid:        data.IsPaid,
		CreatedAt:     data.CreatedAt,
	}
}
