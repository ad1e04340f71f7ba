package postgres

import (
	"context"

	"megaskyshop/internal/domain/entity"
	"megaskyshop/internal/domain/repository"
	"megaskyshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// List returns all categories ordered by id.
func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindByNameOrSlug looks a category up by exact slug, then by case-insensitive name.
func (repo *categoryRepository) FindByNameOrSlug(ctx context.Context, key string) (*entity.Category, error) {
	var categoryM model.CategoryModel

	err := repo.db.WithContext(ctx).
		Where("slug = ?", key).
		Order("id ASC").
		First(&categoryM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = repo.db.WithContext(ctx).
			Where("LOWER(name) = LOWER(?)", key).
			Order("id ASC").
			First(&categoryM).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindChild returns the category called name under parentID.
func (repo *categoryRepository) FindChild(ctx context.Context, parentID *uint, name string) (*entity.Category, error) {
	var categoryM model.CategoryModel

	query := repo.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	if err := query.Order("id ASC").First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find child category")
	}

	return toCategoryDomain(&categoryM), nil
}

// SlugExists reports whether slug is taken.
func (repo *categoryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check category slug")
	}

	return count > 0, nil
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return toPersistenceError(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		ParentID:    data.ParentID,
		IsActive:    data.IsActive,
		SortOrder:   data.SortOrder,
	}
}

// fromCategoryDomain converts a domain Category entity to a GORM CategoryModel.
func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		ParentID:    data.ParentID,
		IsActive:    data.IsActive,
		SortOrder:   data.SortOrder,
	}
}
