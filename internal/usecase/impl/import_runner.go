// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"megaskyshop/config"
	deliverycontext "megaskyshop/internal/delivery/context"
	"megaskyshop/internal/domain/entity"
	domainerrors "megaskyshop/internal/domain/errors"
	"megaskyshop/internal/domain/repository"
	"megaskyshop/internal/domain/service"
	"megaskyshop/internal/errors"
	"megaskyshop/internal/infra/csvimport"
	"megaskyshop/internal/usecase"
	"megaskyshop/internal/util"

	"go.uber.org/fx"
)

// errDryRunRollback aborts a row transaction after all writes succeeded.
var errDryRunRollback = errors.New("dry run: rolling back row")

// ImportServiceParams holds dependencies for the import services, injected by Fx.
type ImportServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	SectionRepo  repository.HomepageSectionRepository
	Opener       service.SourceOpener
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// RowResult is the outcome of one source row.
type RowResult[T any] struct {
	Line    int
	Row     T
	Skipped bool
	Err     error
}

// rowImporter binds the dataset-specific steps of an import run.
type rowImporter[T any] struct {
	dataset entity.Dataset
	schema  *csvimport.Schema
	// prepare runs once before the first row, outside any transaction.
	prepare func(ctx context.Context) error
	decode  func(dec *csvimport.Decoder, rec csvimport.Record) (T, error)
	// persist writes one decoded row. Returning skipped=true counts the row
	// as skipped instead of imported.
	persist func(ctx context.Context, repos repository.RepositoryFactory, row T) (skipped bool, err error)
}

// importRunner drives the row loop shared by every dataset.
type importRunner struct {
	txManager repository.TransactionManager
	opener    service.SourceOpener
	publisher service.EventPublisher
	config    *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

func newImportRunner(params ImportServiceParams) *importRunner {
	return &importRunner{
		txManager: params.TxManager,
		opener:    params.Opener,
		publisher: params.Publisher,
		config:    params.Config,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a run-scoped logger if available, otherwise falls back to the runner's logger.
func (r *importRunner) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

func (r *importRunner) decoder(startedAt time.Time) *csvimport.Decoder {
	cfg := r.config.Import

	return csvimport.NewDecoder(csvimport.DecoderOptions{
		Now:                startedAt,
		TimestampLayouts:   cfg.TimestampLayouts,
		LegacyUploadPrefix: cfg.LegacyUploadPrefix,
		ImageBasePath:      cfg.ImageBasePath,
		MaxOrderItems:      cfg.MaxOrderItems,
	})
}

// run imports every row of opts.Location with imp. It returns an error only
// when the run cannot start, the source stream breaks or ctx is cancelled;
// in the latter two cases the partial summary is returned alongside the error.
func run[T any](ctx context.Context, r *importRunner, imp rowImporter[T], opts usecase.ImportOptions) (*entity.ImportSummary, error) {
	ctx, runID := deliverycontext.StartRun(ctx, r.logger, imp.dataset.String())
	startedAt := r.now()

	summary := &entity.ImportSummary{
		RunID:     runID,
		Dataset:   imp.dataset,
		Source:    opts.Location,
		DryRun:    opts.DryRun,
		StartedAt: startedAt,
	}

	r.log(ctx).Info("Import started",
		slog.String("source", opts.Location),
		slog.Bool("dry_run", opts.DryRun),
	)

	reader, err := csvimport.Open(ctx, r.opener, opts.Location, imp.schema)
	if err != nil {
		r.log(ctx).Error("Import aborted", slog.String("code", domainerrors.Code(err)), slog.Any("error", err))

		return nil, err
	}
	defer reader.Close()

	binding := reader.Binding()
	r.log(ctx).Debug("Source header bound",
		slog.Any("header", binding.Header()),
		slog.Any("absent", binding.Absent(imp.schema)),
	)

	if imp.prepare != nil {
		if err := imp.prepare(ctx); err != nil {
			r.log(ctx).Error("Import aborted while loading lookups", slog.Any("error", err))

			return nil, err
		}
	}

	dec := r.decoder(startedAt)

	var streamErr, interrupted error
	for rec, rowErr := range reader.Rows() {
		if ctx.Err() != nil {
			interrupted = ctx.Err()
			r.log(ctx).Warn("Import interrupted", slog.Int("line", rec.Line))

			break
		}

		if rowErr != nil {
			if _, ok := errors.AsType[*domainerrors.MalformedRowError](rowErr); !ok {
				streamErr = rowErr

				break
			}
			r.recordFailure(ctx, summary, rec, rowErr)

			continue
		}

		result := processRow(ctx, r, imp, dec, rec, opts.DryRun)
		switch {
		case result.Err != nil:
			r.recordFailure(ctx, summary, rec, result.Err)
		case result.Skipped:
			summary.Skipped++
			r.log(ctx).Debug("Row skipped", slog.Int("line", result.Line))
		default:
			summary.Imported++
		}
	}

	summary.FinishedAt = r.now()
	r.logSummary(ctx, summary)
	r.publish(ctx, summary, 0)

	switch {
	case streamErr != nil:
		return summary, errors.Wrap(streamErr, "source stream failed")
	case interrupted != nil:
		return summary, errors.Wrap(interrupted, "import interrupted")
	}

	return summary, nil
}

// processRow decodes rec and persists it in its own transaction.
func processRow[T any](
	ctx context.Context,
	r *importRunner,
	imp rowImporter[T],
	dec *csvimport.Decoder,
	rec csvimport.Record,
	dryRun bool,
) RowResult[T] {
	result := RowResult[T]{Line: rec.Line}

	row, err := imp.decode(dec, rec)
	if err != nil {
		result.Err = err

		return result
	}
	result.Row = row

	err = r.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		skipped, err := imp.persist(ctx, repos, row)
		if err != nil {
			return err
		}
		result.Skipped = skipped
		if dryRun {
			return errDryRunRollback
		}

		return nil
	})
	if err != nil && !errors.Is(err, errDryRunRollback) {
		result.Skipped = false
		result.Err = err
	}

	return result
}

func (r *importRunner) recordFailure(ctx context.Context, summary *entity.ImportSummary, rec csvimport.Record, err error) {
	summary.Failed++
	if len(summary.Failures) < r.config.Import.MaxReportedFailures {
		summary.Failures = append(summary.Failures, entity.RowFailure{Line: rec.Line, Reason: err.Error()})
	}

	attrs := []slog.Attr{
		slog.Int("line", rec.Line),
		slog.String("code", domainerrors.Code(err)),
		slog.Any("error", err),
		slog.Any("row", rec.Map()),
		slog.Int("imported", summary.Imported),
		slog.Int("failed", summary.Failed),
	}
	if persistErr, ok := errors.AsType[*domainerrors.PersistenceError](err); ok {
		attrs = append(attrs, slog.Bool("transient", persistErr.Transient()))
	}

	r.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Row failed", attrs...)
}

func (r *importRunner) logSummary(ctx context.Context, summary *entity.ImportSummary) {
	r.log(ctx).Info("Import finished",
		slog.Int("total", summary.Total()),
		slog.Int("imported", summary.Imported),
		slog.Int("failed", summary.Failed),
		slog.Int("skipped", summary.Skipped),
		slog.Bool("dry_run", summary.DryRun),
		slog.String("duration", util.FormatDuration(summary.Duration())),
	)
}

// publish announces the finished run. Failures are logged and otherwise ignored.
func (r *importRunner) publish(ctx context.Context, summary *entity.ImportSummary, deleted int) {
	if r.publisher == nil {
		return
	}

	event := &service.ImportCompletedEvent{
		RunID:      summary.RunID.String(),
		Dataset:    summary.Dataset.String(),
		Source:     summary.Source,
		DryRun:     summary.DryRun,
		Imported:   summary.Imported,
		Failed:     summary.Failed,
		Skipped:    summary.Skipped,
		Deleted:    deleted,
		StartedAt:  summary.StartedAt,
		FinishedAt: summary.FinishedAt,
	}

	// Detached so that an interrupted run still reports.
	publishCtx := context.WithoutCancel(ctx)
	if err := r.publisher.PublishImportCompleted(publishCtx, event); err != nil {
		r.log(ctx).Warn("Failed to publish import event", slog.Any("error", err))
	}
}
