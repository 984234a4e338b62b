// Package usecase defines the application-level interfaces of the order
// lifecycle and settlement core.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase drives the order status state machine.
type OrderUsecase interface {
	// TransitionOrder moves an order to newStatus. It fails with an
	// InvalidTransitionError when the state machine forbids the change and
	// publishes a transition event on success. Entering delivered triggers
	// settlement; a settlement failure does not fail the transition.
	TransitionOrder(ctx context.Context, orderID uuid.UUID, newStatus entity.OrderStatus) (*entity.Order, error)

	// GetOrder retrieves an order with its lines.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
}
