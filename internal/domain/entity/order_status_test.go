package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want OrderStatus
	}{
		{raw: "SHIPPED", want: OrderStatusShipped},
		{raw: "shipped", want: OrderStatusShipped},
		{raw: "Shipped", want: OrderStatusShipped},
		{raw: " delivered ", want: OrderStatusDelivered},
		{raw: "cancelled", want: OrderStatusCancelled},
		{raw: "PROCESSING", want: OrderStatusProcessing},
		{raw: "pending", want: OrderStatusPending},
		{raw: "", want: OrderStatusPending},
		{raw: "unknown", want: OrderStatusPending},
		{raw: "in transit", want: OrderStatusPending},
		{raw: "canceled", want: OrderStatusPending},
		{raw: "shipped!", want: OrderStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStatus(tt.raw))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, OrderStatus("shipped").IsValid())
}
