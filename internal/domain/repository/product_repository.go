// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"megaskyshop/internal/domain/entity"
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// ListRefs returns the id and name of every product, ordered by id.
	ListRefs(ctx context.Context) ([]entity.ProductRef, error)

	// Create persists a product together with its images, meta tags and reviews.
	Create(ctx context.Context, product *entity.Product) error
}
