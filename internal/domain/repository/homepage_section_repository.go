package repository

import (
	"context"

	"megaskyshop/internal/domain/entity"
)

// HomepageSectionRepository defines the interface for homepage section database operations.
type HomepageSectionRepository interface {
	// List returns all sections ordered by id.
	List(ctx context.Context) ([]*entity.HomepageSection, error)

	// Create persists a new section.
	Create(ctx context.Context, section *entity.HomepageSection) error

	// DeleteByIDs removes the given sections and returns how many rows went away.
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
}
