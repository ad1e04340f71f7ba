// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// OrderStatus is the lifecycle label of an order or of its courier tracking.
type OrderStatus string

const (
	// OrderStatusPending is the baseline state and the fallback for unknown input.
	OrderStatusPending OrderStatus = "Pending"
	// OrderStatusProcessing indicates the order is being prepared.
	OrderStatusProcessing OrderStatus = "Processing"
	// OrderStatusShipped indicates the order was handed to a courier.
	OrderStatusShipped OrderStatus = "Shipped"
	// OrderStatusDelivered indicates the order reached the customer.
	OrderStatusDelivered OrderStatus = "Delivered"
	// OrderStatusCancelled indicates the order was cancelled.
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// OrderStatuses lists every canonical status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is one of the canonical labels.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further courier progress is expected.
// Terminal orders can still be edited.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// NormalizeStatus maps free-text status input onto the closed enumeration.
// The input is lowercased and its first letter uppercased before an exact
// comparison, so multi-word or garbled values fall back to Pending.
func NormalizeStatus(raw string) OrderStatus {
	candidate := OrderStatus(ucFirst(strings.ToLower(strings.TrimSpace(raw))))
	if candidate.IsValid() {
		return candidate
	}

	return OrderStatusPending
}

func ucFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[size:]
}
