package impl

import (
	"context"
	"log/slog"
	"strconv"

	"megaskyshop/internal/domain/entity"
	domainerrors "megaskyshop/internal/domain/errors"
	"megaskyshop/internal/domain/repository"
	"megaskyshop/internal/domain/resolver"
	"megaskyshop/internal/errors"
	"megaskyshop/internal/infra/csvimport"
	"megaskyshop/internal/usecase"
)

// productImportService implements ImportUsecase for product exports.
type productImportService struct {
	runner       *importRunner
	categoryRepo repository.CategoryRepository

	categories *resolver.CategoryResolver
}

// NewProductImportService is the constructor for productImportService.
func NewProductImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &productImportService{
		runner:       newImportRunner(params),
		categoryRepo: params.CategoryRepo,
	}
}

// Dataset returns the products dataset.
func (srv *productImportService) Dataset() entity.Dataset {
	return entity.DatasetProducts
}

// Import reads a product export.
func (srv *productImportService) Import(ctx context.Context, opts usecase.ImportOptions) (*entity.ImportSummary, error) {
	return run(ctx, srv.runner, rowImporter[*csvimport.ProductRow]{
		dataset: entity.DatasetProducts,
		schema:  csvimport.ProductSchema(),
		prepare: srv.loadCategories,
		decode: func(dec *csvimport.Decoder, rec csvimport.Record) (*csvimport.ProductRow, error) {
			return dec.DecodeProduct(rec)
		},
		persist: srv.persist,
	}, opts)
}

// loadCategories builds the category mapping: configured aliases first,
// then every stored category by name and by slug. The run is refused when
// import.defaultCategoryId is not a stored category.
func (srv *productImportService) loadCategories(ctx context.Context) error {
	cfg := srv.runner.config.Import

	aliases := make([]resolver.CategoryAlias, 0, len(cfg.CategoryAliases))
	for _, alias := range cfg.CategoryAliases {
		aliases = append(aliases, resolver.CategoryAlias{Label: alias.Label, CategoryID: alias.CategoryID})
	}

	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load categories")
	}
	defaultFound := false
	for _, category := range categories {
		aliases = append(aliases,
			resolver.CategoryAlias{Label: category.Name, CategoryID: category.ID},
			resolver.CategoryAlias{Label: category.Slug, CategoryID: category.ID},
		)
		defaultFound = defaultFound || category.ID == cfg.DefaultCategoryID
	}
	if !defaultFound {
		return domainerrors.ErrDefaultCategoryMissing.WithDetails(
			"import.defaultCategoryId=" + strconv.FormatUint(uint64(cfg.DefaultCategoryID), 10))
	}

	srv.categories = resolver.NewCategoryResolver(cfg.DefaultCategoryID, aliases...)
	srv.runner.log(ctx).Debug("Category mapping loaded",
		slog.Int("aliases", len(cfg.CategoryAliases)),
		slog.Int("categories", len(categories)),
	)

	return nil
}

func (srv *productImportService) persist(ctx context.Context, repos repository.RepositoryFactory, row *csvimport.ProductRow) (bool, error) {
	product := srv.buildProduct(ctx, row)

	if err := repos.NewProductRepository().Create(ctx, product); err != nil {
		return false, err
	}

	return false, nil
}

func (srv *productImportService) buildProduct(ctx context.Context, row *csvimport.ProductRow) *entity.Product {
	categoryID, mapped := srv.categories.Resolve(row.Category)
	if !mapped && row.Category != "" {
		srv.runner.log(ctx).Debug("Category fell back to default",
			slog.Int("line", row.Line),
			slog.String("category", row.Category),
			slog.Uint64("category_id", uint64(categoryID)),
		)
	}

	product := &entity.Product{
		Name:            row.Name,
		Price:           row.Price,
		Description:     row.Description,
		Category:        row.Category,
		CategoryID:      categoryID,
		Stock:           row.Stock,
		MainImage:       row.MainImage,
		AvgRating:       row.AvgRating,
		MetaTitle:       row.MetaTitle,
		MetaDescription: row.MetaDescription,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	if row.MainImage != "" {
		product.Images = []*entity.ProductImage{{Path: row.MainImage, IsMain: true}}
	}
	for _, tag := range row.MetaTags {
		product.MetaTags = append(product.MetaTags, &entity.ProductMetaTag{Tag: tag})
	}
	if review := row.Review; review != nil {
		product.Reviews = []*entity.ProductReview{{
			ReviewerName: review.Name,
			Rating:       review.Rating,
			Comment:      review.Comment,
			CreatedAt:    review.CreatedAt,
		}}
	}

	return product
}
