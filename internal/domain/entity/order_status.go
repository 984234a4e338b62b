package entity

import "errors"

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

// remember to add new statuses to the allowedTransitions map
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"
	OrderStatusDispute    OrderStatus = "dispute"
)

// allowedTransitions is the directed transition table of the order state
// machine. A dispute may additionally be opened from any state that is not
// already cancelled or returned; resolving a dispute is handled elsewhere.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled, OrderStatusDispute},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled, OrderStatusDispute},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusReturned, OrderStatusDispute},
	OrderStatusDelivered:  {OrderStatusReturned, OrderStatusDispute},
	OrderStatusCancelled:  {},
	OrderStatusReturned:   {},
	OrderStatusDispute:    {},
}

// ToOrderStatus parses a raw string into an OrderStatus.
func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := allowedTransitions[status]; ok {
		return status, nil
	}

	return "", errors.New("invalid order status")
}

// OrderStatuses returns all known statuses.
func OrderStatuses() []OrderStatus {
	result := make([]OrderStatus, 0, len(allowedTransitions))
	for status := range allowedTransitions {
		result = append(result, status)
	}

	return result
}

// IsValid reports whether the status is one of the known statuses.
func (s OrderStatus) IsValid() bool {
	_, ok := allowedTransitions[s]

	return ok
}

// CanTransitionTo reports whether the state machine permits moving from the
// current status to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}
