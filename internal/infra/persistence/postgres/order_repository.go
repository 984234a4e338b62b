package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order aggregate together with its lines.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range order.Lines {
		order.Lines[i].ID = orderM.Lines[i].ID
		order.Lines[i].OrderID = orderM.ID
	}

	return nil
}

// FindOrderByID retrieves an order and its lines by the order's unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOrder(ctx, id, false)
}

// FindOrderByIDForUpdate retrieves an order and its lines while holding a
// row-level lock on the order row. Only meaningful inside a transaction.
func (repo *orderRepository) FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOrder(ctx, id, true)
}

func (repo *orderRepository) findOrder(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.Order, error) {
	var orderM model.OrderModel

	query := repo.db.WithContext(ctx)
	if forUpdate {
		// The lock covers the orders row only; lines are immutable.
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: model.OrderModel{}.TableName()}})
	}

	if err := query.
		Preload("Lines").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateOrderStatus sets the order's status and refreshes its update timestamp.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status.String(),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// FindUnsettledDeliveredOrders returns IDs of delivered orders without any
// commission ledger entries, oldest first, up to limit.
func (repo *orderRepository) FindUnsettledDeliveredOrders(ctx context.Context, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("status = ?", entity.OrderStatusDelivered.String()).
		Where("NOT EXISTS (SELECT 1 FROM commissions WHERE commissions.order_id = orders.id)").
		Order("updated_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unsettled delivered orders")
	}

	return ids, nil
}

// toOrderDomain converts a GORM order model to a domain entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	lines := make([]entity.OrderLine, 0, len(data.Lines))
	for _, lineM := range data.Lines {
		lines = append(lines, entity.OrderLine{
			ID:          lineM.ID,
			OrderID:     lineM.OrderID,
			ProductID:   lineM.ProductID,
			ProductName: lineM.ProductName,
			Category:    lineM.Category,
			SellerID:    lineM.SellerID,
			UnitPrice:   lineM.UnitPrice,
			Quantity:    lineM.Quantity,
		})
	}

	return &entity.Order{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		TotalAmount: data.TotalAmount,
		Status:      entity.OrderStatus(data.Status),
		Lines:       lines,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain entity to a GORM order model.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	lines := make([]model.OrderLineModel, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, model.OrderLineModel{
			ID:          line.ID,
			OrderID:     line.OrderID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Category:    line.Category,
			SellerID:    line.SellerID,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
		})
	}

	return &model.OrderModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		TotalAmount: data.TotalAmount,
		Status:      data.Status.String(),
		Lines:       lines,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
