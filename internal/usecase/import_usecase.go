// Package usecase defines the application operations exposed to the CLI.
package usecase

import (
	"context"

	"megaskyshop/internal/domain/entity"
)

// ImportOptions selects the source of an import run.
type ImportOptions struct {
	// Location is a local path or a blob URL.
	Location string
	// DryRun executes every row and rolls it back.
	DryRun bool
}

// ImportUsecase imports one dataset from a CSV source.
type ImportUsecase interface {
	// Dataset returns the dataset this use case imports.
	Dataset() entity.Dataset

	// Import reads every row of the source and persists it in its own
	// transaction. Row failures are counted in the summary; only fatal
	// errors (missing source, bad header, broken stream) are returned.
	Import(ctx context.Context, opts ImportOptions) (*entity.ImportSummary, error)
}

// SectionDedupUsecase collapses homepage sections sharing a section name.
type SectionDedupUsecase interface {
	// Collapse keeps the lowest id per section name and deletes the rest,
	// unless dryRun is set.
	Collapse(ctx context.Context, dryRun bool) (*entity.CollapseReport, error)
}
