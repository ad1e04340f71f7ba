package impl

import (
	"context"
	"log/slog"
	"strconv"

	"megaskyshop/internal/domain/entity"
	domainerrors "megaskyshop/internal/domain/errors"
	"megaskyshop/internal/domain/repository"
	"megaskyshop/internal/errors"
	"megaskyshop/internal/infra/csvimport"
	"megaskyshop/internal/usecase"
	"megaskyshop/internal/util"
)

const (
	fallbackCategorySlug = "category"
	maxSlugAttempts      = 1000
)

// categoryImportService implements ImportUsecase for category seed files.
type categoryImportService struct {
	runner *importRunner
}

// NewCategoryImportService is the constructor for categoryImportService.
func NewCategoryImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &categoryImportService{
		runner: newImportRunner(params),
	}
}

// Dataset returns the categories dataset.
func (srv *categoryImportService) Dataset() entity.Dataset {
	return entity.DatasetCategories
}

// Import reads a category seed file. Parents must appear before their
// children.
func (srv *categoryImportService) Import(ctx context.Context, opts usecase.ImportOptions) (*entity.ImportSummary, error) {
	return run(ctx, srv.runner, rowImporter[*csvimport.CategoryRow]{
		dataset: entity.DatasetCategories,
		schema:  csvimport.CategorySchema(),
		decode: func(dec *csvimport.Decoder, rec csvimport.Record) (*csvimport.CategoryRow, error) {
			return dec.DecodeCategory(rec)
		},
		persist: srv.persist,
	}, opts)
}

func (srv *categoryImportService) persist(ctx context.Context, repos repository.RepositoryFactory, row *csvimport.CategoryRow) (bool, error) {
	categoryRepo := repos.NewCategoryRepository()

	parentID, err := srv.resolveParent(ctx, categoryRepo, row)
	if err != nil {
		return false, err
	}

	existing, err := categoryRepo.FindChild(ctx, parentID, row.Name)
	if err == nil {
		srv.runner.log(ctx).Debug("Category already exists",
			slog.Int("line", row.Line),
			slog.String("name", row.Name),
			slog.Uint64("category_id", uint64(existing.ID)),
		)

		return true, nil
	}
	if !errors.Is(err, repository.ErrCategoryNotFound) {
		return false, err
	}

	slug, err := srv.uniqueSlug(ctx, categoryRepo, row)
	if err != nil {
		return false, err
	}

	category := &entity.Category{
		Name:        row.Name,
		Slug:        slug,
		Description: row.Description,
		ParentID:    parentID,
		IsActive:    row.IsActive,
		SortOrder:   row.SortOrder,
	}

	return false, categoryRepo.Create(ctx, category)
}

// resolveParent finds the parent by slug or name and enforces the two-level
// limit.
func (srv *categoryImportService) resolveParent(ctx context.Context, categoryRepo repository.CategoryRepository, row *csvimport.CategoryRow) (*uint, error) {
	if row.Parent == "" {
		return nil, nil
	}

	parent, err := categoryRepo.FindByNameOrSlug(ctx, row.Parent)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.NewRowParseError(row.Line, "parent",
			domainerrors.ErrCategoryParentNotFound.WithDetails(row.Parent))
	}
	if err != nil {
		return nil, err
	}

	if !parent.IsTopLevel() {
		return nil, domainerrors.NewRowParseError(row.Line, "parent",
			domainerrors.ErrCategoryTooDeep.WithDetails(row.Parent))
	}

	return &parent.ID, nil
}

// uniqueSlug derives a slug from the row and appends -2, -3, ... until it is free.
func (srv *categoryImportService) uniqueSlug(ctx context.Context, categoryRepo repository.CategoryRepository, row *csvimport.CategoryRow) (string, error) {
	base := util.Slugify(row.Slug)
	if base == "" {
		base = util.Slugify(row.Name)
	}
	if base == "" {
		base = fallbackCategorySlug
	}

	candidate := base
	for attempt := 2; attempt <= maxSlugAttempts; attempt++ {
		taken, err := categoryRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(attempt)
	}

	return "", domainerrors.NewRowParseError(row.Line, "slug", errors.Errorf("no free slug for %q", base))
}
