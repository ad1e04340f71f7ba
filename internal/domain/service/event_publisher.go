package service

import (
	"context"
	"time"
)

// ImportCompletedEvent announces the end of an import or collapse run.
type ImportCompletedEvent struct {
	RunID      string    `json:"run_id"`
	Dataset    string    `json:"dataset"`
	Source     string    `json:"source,omitempty"`
	DryRun     bool      `json:"dry_run"`
	Imported   int       `json:"imported"`
	Failed     int       `json:"failed"`
	Skipped    int       `json:"skipped"`
	Deleted    int       `json:"deleted,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// EventPublisher defines the interface for publishing run events to a message queue
type EventPublisher interface {
	// PublishImportCompleted publishes the summary of a finished run
	PublishImportCompleted(ctx context.Context, event *ImportCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
