package postgres

import (
	"context"

	"megaskyshop/internal/domain/entity"
	"megaskyshop/internal/domain/repository"
	"megaskyshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// homepageSectionRepository implements the repository.HomepageSectionRepository interface.
type homepageSectionRepository struct {
	db *gorm.DB
}

// NewHomepageSectionRepository is the constructor for homepageSectionRepository.
func NewHomepageSectionRepository(db *gorm.DB) repository.HomepageSectionRepository {
	return &homepageSectionRepository{
		db: db,
	}
}

// List returns all sections ordered by id.
func (repo *homepageSectionRepository) List(ctx context.Context) ([]*entity.HomepageSection, error) {
	var sectionModels []*model.HomepageSectionModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&sectionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list homepage sections")
	}

	sections := make([]*entity.HomepageSection, 0, len(sectionModels))
	for _, sectionM := range sectionModels {
		sections = append(sections, toHomepageSectionDomain(sectionM))
	}

	return sections, nil
}

// Create persists a new section.
func (repo *homepageSectionRepository) Create(ctx context.Context, section *entity.HomepageSection) error {
	sectionM := fromHomepageSectionDomain(section)

	if err := repo.db.WithContext(ctx).Create(sectionM).Error; err != nil {
		return toPersistenceError(err, "failed to create homepage section")
	}

	section.ID = sectionM.ID

	return nil
}

// DeleteByIDs removes the given sections.
func (repo *homepageSectionRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.HomepageSectionModel{})
	if result.Error != nil {
		return 0, toPersistenceError(result.Error, "failed to delete homepage sections")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toHomepageSectionDomain converts a GORM HomepageSectionModel to a domain HomepageSection entity.
func toHomepageSectionDomain(data *model.HomepageSectionModel) *entity.HomepageSection {
	if data == nil {
		return nil
	}

	return &entity.HomepageSection{
		ID:             data.ID,
		SectionName:    data.SectionName,
		Title:          data.Title,
		Subtitle:       data.Subtitle,
		Content:        data.Content,
		ButtonText:     data.ButtonText,
		ButtonURL:      data.ButtonURL,
		AdditionalData: map[string]any(data.AdditionalData),
		IsActive:       data.IsActive,
		SortOrder:      data.SortOrder,
	}
}

// fromHomepageSectionDomain converts a domain HomepageSection entity to a GORM HomepageSectionModel.
func fromHomepageSectionDomain(data *entity.HomepageSection) *model.HomepageSectionModel {
	if data == nil {
		return nil
	}

	return &model.HomepageSectionModel{
		ID:             data.ID,
		SectionName:    data.SectionName,
		Title:          data.Title,
		Subtitle:       data.Subtitle,
		Content:        data.Content,
		ButtonText:     data.ButtonText,
		ButtonURL:      data.ButtonURL,
		AdditionalData: datatypes.JSONMap(data.AdditionalData),
		IsActive:       data.IsActive,
		SortOrder:      data.SortOrder,
	}
}
