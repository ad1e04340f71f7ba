package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"megaskyshop/internal/domain/entity"
	"megaskyshop/internal/usecase"
	"megaskyshop/internal/util"

	"github.com/pkg/errors"
)

func runImport(ctx context.Context, dataset entity.Dataset, file string, dryRun bool) error {
	return withApp(ctx, func(uc *useCases) error {
		importer, ok := uc.importers[dataset]
		if !ok {
			return errors.Errorf("no importer registered for %s", dataset)
		}

		location := file
		if location == "" {
			location = uc.config.Import.Sources.Source(dataset.String())
		}
		if location == "" {
			return errors.Errorf("no source given for %s: pass -file or set import.sources.%s", dataset, dataset)
		}

		summary, err := importer.Import(ctx, usecase.ImportOptions{Location: location, DryRun: dryRun})
		if summary != nil {
			printSummary(summary)
		}

		return err
	})
}

func runDedup(ctx context.Context, dryRun bool) error {
	return withApp(ctx, func(uc *useCases) error {
		report, err := uc.dedup.Collapse(ctx, dryRun)
		if err != nil {
			return err
		}
		printCollapseReport(report)

		return nil
	})
}

func printSummary(summary *entity.ImportSummary) {
	mode := ""
	if summary.DryRun {
		mode = " (dry run, nothing persisted)"
	}

	fmt.Printf("Import %s%s\n", summary.Dataset, mode)
	fmt.Printf("  Run:      %s\n", summary.RunID)
	fmt.Printf("  Source:   %s\n", summary.Source)
	fmt.Printf("  Rows:     %d\n", summary.Total())
	fmt.Printf("  Imported: %d\n", summary.Imported)
	fmt.Printf("  Skipped:  %d\n", summary.Skipped)
	fmt.Printf("  Failed:   %d\n", summary.Failed)
	fmt.Printf("  Duration: %s\n", util.FormatDuration(summary.Duration()))

	if len(summary.Failures) == 0 {
		return
	}

	fmt.Fprintln(os.Stderr, "\nFailed rows:")
	for _, failure := range summary.Failures {
		fmt.Fprintf(os.Stderr, "  line %d: %s\n", failure.Line, failure.Reason)
	}
	if hidden := summary.Failed - len(summary.Failures); hidden > 0 {
		fmt.Fprintf(os.Stderr, "  ... and %d more (see logs)\n", hidden)
	}
}

func printCollapseReport(report *entity.CollapseReport) {
	verb := "Deleted"
	if report.DryRun {
		verb = "Would delete"
	}

	fmt.Printf("Homepage section collapse\n")
	fmt.Printf("  Run:       %s\n", report.RunID)
	fmt.Printf("  Duplicated names: %d\n", report.Groups)
	fmt.Printf("  %s: %d\n", verb, len(report.Deleted))

	if len(report.Deleted) == 0 {
		return
	}

	ids := make([]string, 0, len(report.Deleted))
	for _, id := range report.Deleted {
		ids = append(ids, fmt.Sprint(id))
	}
	fmt.Printf("  Ids:       %s\n", strings.Join(ids, ", "))
}
