package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"megaskyshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - categories, products, orders, sections: import one dataset
// - dedup-sections: collapse homepage sections sharing a name

const cmdDedupSections = "dedup-sections"

type importFlags struct {
	cmd    *flag.FlagSet
	file   *string
	dryRun *bool
}

func newImportFlags(dataset entity.Dataset) importFlags {
	cmd := flag.NewFlagSet(dataset.String(), flag.ExitOnError)

	return importFlags{
		cmd:    cmd,
		file:   cmd.String("file", "", "Source path or URL (defaults to import.sources."+dataset.String()+")"),
		dryRun: cmd.Bool("dry-run", false, "Process every row and roll it back"),
	}
}

type dedupFlags struct {
	cmd    *flag.FlagSet
	dryRun *bool
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runSubcommand(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, name string, args []string) error {
	switch name {
	case entity.DatasetCategories.String(), entity.DatasetProducts.String(),
		entity.DatasetOrders.String(), entity.DatasetSections.String():
		return handleImport(ctx, entity.Dataset(name), args)
	case cmdDedupSections:
		return handleDedup(ctx, args)
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", name)
	}
}

func handleImport(ctx context.Context, dataset entity.Dataset, args []string) error {
	flags := newImportFlags(dataset)
	if err := flags.cmd.Parse(args); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", dataset)
	}

	return runImport(ctx, dataset, *flags.file, *flags.dryRun)
}

func handleDedup(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet(cmdDedupSections, flag.ExitOnError)
	flags := dedupFlags{
		cmd:    cmd,
		dryRun: cmd.Bool("dry-run", false, "Report duplicates without deleting them"),
	}
	if err := flags.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse dedup-sections flags")
	}

	return runDedup(ctx, *flags.dryRun)
}

func printUsage() {
	fmt.Println("Usage: importer <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  categories       Import categories (parents before children)")
	fmt.Println("  products         Import products")
	fmt.Println("  orders           Import orders")
	fmt.Println("  sections         Import homepage sections")
	fmt.Println("  dedup-sections   Remove homepage sections with a repeated name")
	fmt.Println("")
	fmt.Println("Use 'importer <command> -h' for more information about a command.")
}
