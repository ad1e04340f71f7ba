package postgres

import (
	"context"

	"megaskyshop/internal/domain/entity"
	"megaskyshop/internal/domain/repository"
	"megaskyshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// ListRefs returns the id and name of every product, ordered by id.
func (repo *productRepository) ListRefs(ctx context.Context) ([]entity.ProductRef, error) {
	var refs []entity.ProductRef

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("id", "name").
		Order("id ASC").
		Scan(&refs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list product names")
	}

	return refs, nil
}

// Create persists a product together with its images, meta tags and reviews.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return toPersistenceError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	for i := range productM.Images {
		product.Images[i].ID = productM.Images[i].ID
		product.Images[i].ProductID = productM.ID
	}
	for i := range productM.MetaTags {
		product.MetaTags[i].ID = productM.MetaTags[i].ID
		product.MetaTags[i].ProductID = productM.ID
	}
	for i := range productM.Reviews {
		product.Reviews[i].ID = productM.Reviews[i].ID
		product.Reviews[i].ProductID = productM.ID
	}

	return nil
}

// --- Mapper Functions ---

// fromProductDomain converts a domain Product entity and its children to GORM models.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:              data.ID,
		Name:            data.Name,
		Price:           data.Price,
		Description:     data.Description,
		Category:        data.Category,
		CategoryID:      data.CategoryID,
		Stock:           data.Stock,
		MainImage:       data.MainImage,
		AvgRating:       data.AvgRating,
		MetaTitle:       data.MetaTitle,
		MetaDescription: data.MetaDescription,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	for _, image := range data.Images {
		productM.Images = append(productM.Images, model.ProductImageModel{
			Path:      image.Path,
			IsMain:    image.IsMain,
			SortOrder: image.SortOrder,
		})
	}
	for _, tag := range data.MetaTags {
		productM.MetaTags = append(productM.MetaTags, model.ProductMetaTagModel{Tag: tag.Tag})
	}
	for _, review := range data.Reviews {
		productM.Reviews = append(productM.Reviews, model.ProductReviewModel{
			ReviewerName: review.ReviewerName,
			Rating:       review.Rating,
			Comment:      review.Comment,
			CreatedAt:    review.CreatedAt,
		})
	}

	return productM
}
