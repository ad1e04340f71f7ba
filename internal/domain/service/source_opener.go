package service

import (
	"context"
	"io"
)

// SourceOpener opens import sources by location. A location is either a
// local path or a URL understood by the implementation.
type SourceOpener interface {
	// Open returns a reader for location. A missing source is reported as
	// *errors.SourceMissingError.
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}
