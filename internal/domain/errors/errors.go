// Package errors defines the domain-level error values of the settlement core.
package errors

import (
	"fmt"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"
)

var (
	// ErrAlreadySettled is returned when settlement is requested for an order
	// that already has ledger entries. It is a normal idempotent outcome, not
	// a failure.
	ErrAlreadySettled = errors.New("order already settled")

	// ErrOrderNotDelivered is returned when settlement is requested for an
	// order that has not reached the delivered status.
	ErrOrderNotDelivered = errors.New("order is not in delivered status")

	// ErrSettlementUnavailable is returned when settlement could not complete
	// after bounded retries (lock contention, storage unavailability). The
	// condition is transient; callers may retry out of band.
	ErrSettlementUnavailable = errors.New("settlement temporarily unavailable")
)

// InvalidTransitionError reports a status change the state machine forbids.
// No state is mutated when it is returned.
type InvalidTransitionError struct {
	From entity.OrderStatus
	To   entity.OrderStatus
}

// Error implements the error interface.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition from %s to %s", e.From, e.To)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var target *InvalidTransitionError

	return errors.As(err, &target)
}
