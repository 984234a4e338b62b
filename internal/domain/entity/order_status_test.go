package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled, OrderStatusDispute},
		OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled, OrderStatusDispute},
		OrderStatusShipped:    {OrderStatusDelivered, OrderStatusReturned, OrderStatusDispute},
		OrderStatusDelivered:  {OrderStatusReturned, OrderStatusDispute},
		OrderStatusCancelled:  {},
		OrderStatusReturned:   {},
		OrderStatusDispute:    {},
	}

	for _, from := range OrderStatuses() {
		for _, to := range OrderStatuses() {
			want := false
			for _, status := range allowed[from] {
				if status == to {
					want = true
				}
			}

			assert.Equal(t, want, from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestOrderStatus_SelfTransitionForbidden(t *testing.T) {
	for _, status := range OrderStatuses() {
		assert.False(t, status.CanTransitionTo(status), "self transition %s", status)
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	terminal := map[OrderStatus]bool{
		OrderStatusCancelled: true,
		OrderStatusReturned:  true,
		OrderStatusDispute:   true,
	}

	for _, status := range OrderStatuses() {
		assert.Equal(t, terminal[status], status.IsTerminal(), "status %s", status)
	}
}

func TestToOrderStatus(t *testing.T) {
	status, err := ToOrderStatus("delivered")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusDelivered, status)

	_, err = ToOrderStatus("teleported")
	assert.Error(t, err)
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.False(t, OrderStatus("lost").IsValid())
}
