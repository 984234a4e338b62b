// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists a new order aggregate together with its lines.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order and its lines by the order's unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByIDForUpdate retrieves an order and its lines while holding a
	// row-level lock on the order for the duration of the surrounding
	// transaction. Callers must invoke it through the transaction manager.
	FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus sets the order's status and refreshes its update
	// timestamp. The state-machine check belongs to the caller.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// FindUnsettledDeliveredOrders returns IDs of orders sitting in delivered
	// status without any commission ledger entries, up to limit.
	FindUnsettledDeliveredOrders(ctx context.Context, limit int) ([]uuid.UUID, error)
}
