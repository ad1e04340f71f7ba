package repository

import (
	"context"

	"megaskyshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCategoryNotFound is returned when a category lookup has no result.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// List returns all categories ordered by id.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByNameOrSlug looks a category up by exact slug, then by
	// case-insensitive name. The lowest id wins on ties.
	FindByNameOrSlug(ctx context.Context, key string) (*entity.Category, error)

	// FindChild returns the category called name under parentID (nil for
	// top level), compared case-insensitively.
	FindChild(ctx context.Context, parentID *uint, name string) (*entity.Category, error)

	// SlugExists reports whether slug is taken.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error
}
