package repository

import (
	"context"

	"megaskyshop/internal/domain/entity"
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// Create persists an order together with its items and tracking record.
	Create(ctx context.Context, order *entity.Order) error
}
