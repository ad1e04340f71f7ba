package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              uint            `gorm:"primaryKey;autoIncrement"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Email           *string         `gorm:"type:varchar(255)"`
	ShippingAddress string          `gorm:"type:text"`
	Mobile          string          `gorm:"type:varchar(50)"`
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:'Pending';index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items    []OrderItemModel    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Tracking *OrderTrackingModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Name and Price are snapshots; ProductID is a soft reference.
type OrderItemModel struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	OrderID   uint            `gorm:"not null;index"`
	ProductID *uint           `gorm:"index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null;default:1;check:quantity >= 1"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Image     string          `gorm:"type:varchar(512)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderTrackingModel is the GORM-specific struct for the 'order_tracking' table.
type OrderTrackingModel struct {
	ID         uint              `gorm:"primaryKey;autoIncrement"`
	OrderID    uint              `gorm:"not null;uniqueIndex"`
	TrackingID *string           `gorm:"type:varchar(100);index"`
	PartnerID  *string           `gorm:"type:varchar(100)"`
	Status     string            `gorm:"type:varchar(20);not null;default:'Pending'"`
	Details    datatypes.JSONMap
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderTrackingModel) TableName() string {
	return "order_tracking"
}
