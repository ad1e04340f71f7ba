package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer order placed at checkout or brought in by an import.
type Order struct {
	ID              uint
	Name            string
	Email           *string
	ShippingAddress string
	Mobile          string
	Total           decimal.Decimal
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items    []*OrderItem
	Tracking *OrderTracking // Nil when the source row carried no courier data.
}

// OrderItem is a line item. Name and Price are snapshots taken at order time
// and stay stable when the referenced product changes or disappears.
type OrderItem struct {
	ID        uint
	OrderID   uint
	ProductID *uint
	Name      string
	Quantity  int
	Price     decimal.Decimal
	Image     string
}

// Subtotal returns price times quantity.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderTracking holds courier metadata. Its Status is set independently of
// the owning order's status.
type OrderTracking struct {
	ID         uint
	OrderID    uint
	TrackingID *string
	PartnerID  *string // Courier name.
	Status     OrderStatus
	Details    map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
