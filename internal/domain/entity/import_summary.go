package entity

import (
	"time"

	"github.com/google/uuid"
)

// Dataset names a kind of import source.
type Dataset string

const (
	DatasetCategories Dataset = "categories"
	DatasetProducts   Dataset = "products"
	DatasetOrders     Dataset = "orders"
	DatasetSections   Dataset = "sections"
)

// String returns the string representation of the Dataset.
func (d Dataset) String() string {
	return string(d)
}

// RowFailure records why a single source row was not imported.
type RowFailure struct {
	Line   int
	Reason string
}

// ImportSummary is the end-of-run report of a batch import.
type ImportSummary struct {
	RunID      uuid.UUID
	Dataset    Dataset
	Source     string
	DryRun     bool
	Imported   int
	Failed     int
	Skipped    int
	StartedAt  time.Time
	FinishedAt time.Time
	Failures   []RowFailure // bounded; Failed holds the full count
}

// Total returns the number of data rows seen.
func (s *ImportSummary) Total() int {
	return s.Imported + s.Failed + s.Skipped
}

// Duration returns the wall time of the run.
func (s *ImportSummary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}

// CollapseReport describes what a duplicate collapse removed, or would remove.
type CollapseReport struct {
	RunID   uuid.UUID
	DryRun  bool
	// Groups counts the keys that had more than one record.
	Groups  int
	Kept    map[string]uint
	Deleted []uint
}
