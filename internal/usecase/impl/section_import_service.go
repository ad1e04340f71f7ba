package impl

import (
	"context"

	"megaskyshop/internal/domain/entity"
	"megaskyshop/internal/domain/repository"
	"megaskyshop/internal/infra/csvimport"
	"megaskyshop/internal/usecase"
)

// sectionImportService implements ImportUsecase for homepage section seed files.
type sectionImportService struct {
	runner *importRunner
}

// NewSectionImportService is the constructor for sectionImportService.
func NewSectionImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &sectionImportService{
		runner: newImportRunner(params),
	}
}

// Dataset returns the sections dataset.
func (srv *sectionImportService) Dataset() entity.Dataset {
	return entity.DatasetSections
}

// Import reads a homepage section seed file. Sections are appended; run
// dedup-sections afterwards to drop repeated names.
func (srv *sectionImportService) Import(ctx context.Context, opts usecase.ImportOptions) (*entity.ImportSummary, error) {
	return run(ctx, srv.runner, rowImporter[*csvimport.SectionRow]{
		dataset: entity.DatasetSections,
		schema:  csvimport.SectionSchema(),
		decode: func(dec *csvimport.Decoder, rec csvimport.Record) (*csvimport.SectionRow, error) {
			return dec.DecodeSection(rec)
		},
		persist: srv.persist,
	}, opts)
}

func (srv *sectionImportService) persist(ctx context.Context, repos repository.RepositoryFactory, row *csvimport.SectionRow) (bool, error) {
	section := &entity.HomepageSection{
		SectionName:    row.SectionName,
		Title:          row.Title,
		Subtitle:       row.Subtitle,
		Content:        row.Content,
		ButtonText:     row.ButtonText,
		ButtonURL:      row.ButtonURL,
		AdditionalData: row.AdditionalData,
		IsActive:       row.IsActive,
		SortOrder:      row.SortOrder,
	}

	return false, repos.NewHomepageSectionRepository().Create(ctx, section)
}
