package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "shipped", "delivered", "cancelled"} {
		status, ok := ParseOrderStatus(valid)
		assert.True(t, ok, "expected %q to parse", valid)
		assert.Equal(t, OrderStatus(valid), status)
	}

	// Case-insensitive on input, canonical on output.
	status, ok := ParseOrderStatus("Shipped")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusShipped, status)

	_, ok = ParseOrderStatus("returned")
	assert.False(t, ok)
	_, ok = ParseOrderStatus("")
	assert.False(t, ok)
}

func TestStatusForwardTransitions(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusConfirmed))
	assert.True(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusShipped))
	assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusDelivered))
}

func TestStatusBackwardTransitionsRejected(t *testing.T) {
	assert.False(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusPending))
	assert.False(t, OrderStatusShipped.CanTransitionTo(OrderStatusConfirmed))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusShipped))
	// No skipping ahead either.
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusShipped))
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusDelivered))
}

func TestCancelledReachableFromNonTerminalOnly(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusCancelled))
	assert.True(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusCancelled))
	assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusCancelled))
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusConfirmed.Terminal())
	assert.False(t, OrderStatusShipped.Terminal())

	// Terminal states allow nothing at all.
	for _, next := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.False(t, OrderStatusDelivered.CanTransitionTo(next))
		assert.False(t, OrderStatusCancelled.CanTransitionTo(next))
	}
}
