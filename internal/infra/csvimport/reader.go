// Package csvimport reads CSV exports and decodes their rows into typed
// import records.
package csvimport

import (
	"context"
	"encoding/csv"
	"io"
	"iter"

	domainerrors "megaskyshop/internal/domain/errors"
	"megaskyshop/internal/domain/service"
	"megaskyshop/internal/errors"
)

// Reader streams the data rows of one CSV source. It is single-pass.
type Reader struct {
	csv     *csv.Reader
	closer  io.Closer
	binding *Binding
}

// Open opens location through opener, consumes the header row and binds it
// to schema.
func Open(ctx context.Context, opener service.SourceOpener, location string, schema *Schema) (*Reader, error) {
	rc, err := opener.Open(ctx, location)
	if err != nil {
		return nil, err
	}

	reader, err := NewReader(rc, schema)
	if err != nil {
		rc.Close()

		return nil, err
	}
	reader.closer = rc

	return reader, nil
}

// NewReader consumes the header row of r and binds it to schema.
func NewReader(r io.Reader, schema *Schema) (*Reader, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		var required []string
		for _, col := range schema.Columns {
			if col.Required {
				required = append(required, col.Name)
			}
		}

		return nil, domainerrors.NewSchemaError(schema.Dataset, required)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read header row")
	}

	binding, err := schema.Bind(header)
	if err != nil {
		return nil, err
	}

	return &Reader{csv: csvReader, binding: binding}, nil
}

// Binding returns the header binding.
func (r *Reader) Binding() *Binding {
	return r.binding
}

// Rows yields every data row. A row whose column count differs from the
// header, or that is not valid CSV, is yielded with a *MalformedRowError and
// iteration continues. Any other read error is yielded once and ends the
// sequence.
func (r *Reader) Rows() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		width := r.binding.Width()
		for {
			cells, err := r.csv.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				var parseErr *csv.ParseError
				if errors.As(err, &parseErr) {
					rec := Record{Line: parseErr.StartLine, Cells: cells, binding: r.binding}
					if !yield(rec, domainerrors.NewMalformedRowError(parseErr.StartLine, width, len(cells), parseErr)) {
						return
					}

					continue
				}
				yield(Record{}, errors.Wrap(err, "failed to read row"))

				return
			}

			line, _ := r.csv.FieldPos(0)
			rec := Record{Line: line, Cells: cells, binding: r.binding}
			if len(cells) != width {
				if !yield(rec, domainerrors.NewMalformedRowError(line, width, len(cells), nil)) {
					return
				}

				continue
			}

			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Close releases the underlying source.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}

	return errors.WithStack(r.closer.Close())
}
