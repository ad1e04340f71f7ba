package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "megaskyshop/internal/delivery/context"
	"megaskyshop/internal/domain/collapse"
	"megaskyshop/internal/domain/entity"
	"megaskyshop/internal/domain/repository"
	"megaskyshop/internal/errors"
	"megaskyshop/internal/usecase"
)

// datasetSectionDedup is the dataset label reported for collapse runs.
const datasetSectionDedup entity.Dataset = "sections-dedup"

type sectionDedupService struct {
	runner      *importRunner
	sectionRepo repository.HomepageSectionRepository
}

// NewSectionDedupService is the constructor for sectionDedupService.
func NewSectionDedupService(params ImportServiceParams) usecase.SectionDedupUsecase {
	return &sectionDedupService{
		runner:      newImportRunner(params),
		sectionRepo: params.SectionRepo,
	}
}

// sectionKey groups sections by name, ignoring case and surrounding space.
func sectionKey(section *entity.HomepageSection) string {
	return strings.ToLower(strings.TrimSpace(section.SectionName))
}

func sectionID(section *entity.HomepageSection) uint {
	return section.ID
}

// Collapse keeps the lowest id of every section name and deletes the rest.
// With dryRun set it only reports what would be deleted.
func (srv *sectionDedupService) Collapse(ctx context.Context, dryRun bool) (*entity.CollapseReport, error) {
	ctx, runID := deliverycontext.StartRun(ctx, srv.runner.logger, datasetSectionDedup.String())
	startedAt := srv.runner.now()

	sections, err := srv.sectionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list homepage sections")
	}

	plan := collapse.Plan(sections, sectionKey, sectionID)
	report := &entity.CollapseReport{
		RunID:   runID,
		DryRun:  dryRun,
		Groups:  len(plan.Groups),
		Kept:    plan.Kept(),
		Deleted: plan.DeleteIDs(),
	}

	for _, group := range plan.Groups {
		srv.runner.log(ctx).Info("Duplicate sections found",
			slog.String("section_name", group.Key),
			slog.Uint64("keep", uint64(group.Keep)),
			slog.Any("delete", group.Delete),
		)
	}

	deleted := len(report.Deleted)
	if !dryRun && !plan.Empty() {
		err := srv.runner.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			affected, err := repos.NewHomepageSectionRepository().DeleteByIDs(ctx, report.Deleted)
			if err != nil {
				return err
			}
			deleted = int(affected)

			return nil
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to delete duplicate sections")
		}
	}

	srv.runner.log(ctx).Info("Section collapse finished",
		slog.Int("sections", len(sections)),
		slog.Int("groups", report.Groups),
		slog.Int("deleted", deleted),
		slog.Bool("dry_run", dryRun),
	)

	srv.runner.publish(ctx, &entity.ImportSummary{
		RunID:      runID,
		Dataset:    datasetSectionDedup,
		DryRun:     dryRun,
		StartedAt:  startedAt,
		FinishedAt: srv.runner.now(),
	}, deleted)

	return report, nil
}
