package main

import (
	"context"
	"log/slog"

	"megaskyshop/config"
	"megaskyshop/internal/domain/entity"
	"megaskyshop/internal/domain/lifecycle"
	"megaskyshop/internal/errors"
	logs "megaskyshop/internal/infra/log"
	"megaskyshop/internal/infra/persistence/postgres"
	"megaskyshop/internal/infra/pubsub"
	"megaskyshop/internal/infra/source"
	"megaskyshop/internal/usecase"
	"megaskyshop/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type useCaseParams struct {
	fx.In

	Config    *config.Config
	Importers []usecase.ImportUsecase `group:"importers"`
	Dedup     usecase.SectionDedupUsecase
}

// useCases is filled by fx once the graph is built.
type useCases struct {
	config    *config.Config
	importers map[entity.Dataset]usecase.ImportUsecase
	dedup     usecase.SectionDedupUsecase
}

func newApp(ctx context.Context, target *useCases) *fx.App {
	return fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Provide(func() context.Context { return ctx }),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(func(params useCaseParams) {
			target.config = params.Config
			target.dedup = params.Dedup
			target.importers = make(map[entity.Dataset]usecase.ImportUsecase, len(params.Importers))
			for _, importer := range params.Importers {
				target.importers[importer.Dataset()] = importer
			}
		}),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewHomepageSectionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			source.NewOpener,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(impl.NewCategoryImportService, fx.ResultTags(`group:"importers"`)),
			fx.Annotate(impl.NewProductImportService, fx.ResultTags(`group:"importers"`)),
			fx.Annotate(impl.NewOrderImportService, fx.ResultTags(`group:"importers"`)),
			fx.Annotate(impl.NewSectionImportService, fx.ResultTags(`group:"importers"`)),
			impl.NewSectionDedupService,
		),
	)
}

// withApp starts the application, runs fn and stops the application again.
func withApp(ctx context.Context, fn func(uc *useCases) error) (err error) {
	var uc useCases
	app := newApp(ctx, &uc)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
		defer cancel()
		if stopErr := app.Stop(stopCtx); stopErr != nil && err == nil {
			err = errors.Wrap(stopErr, "failed to stop application")
		}
	}()

	return fn(&uc)
}
