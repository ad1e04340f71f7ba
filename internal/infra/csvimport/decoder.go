package csvimport

import (
	"time"

	domainerrors "megaskyshop/internal/domain/errors"
	"megaskyshop/internal/errors"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxOrderItems is the number of items[i] slots read per order row.
const DefaultMaxOrderItems = 2

// DecoderOptions tunes how raw cells are coerced.
type DecoderOptions struct {
	// Now is the fallback for missing or unparsable timestamps.
	Now                time.Time
	TimestampLayouts   []string
	LegacyUploadPrefix string
	ImageBasePath      string
	MaxOrderItems      int
}

// Decoder turns records into validated typed rows.
type Decoder struct {
	opts     DecoderOptions
	validate *validator.Validate
}

// NewDecoder creates a decoder.
func NewDecoder(opts DecoderOptions) *Decoder {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.MaxOrderItems <= 0 {
		opts.MaxOrderItems = DefaultMaxOrderItems
	}

	return &Decoder{
		opts:     opts,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (d *Decoder) timestamp(raw string) time.Time {
	return ToTimestamp(raw, d.opts.Now, d.opts.TimestampLayouts...)
}

func (d *Decoder) image(raw string) string {
	return NormalizeImagePath(raw, d.opts.LegacyUploadPrefix, d.opts.ImageBasePath)
}

// check runs struct validation and reports the first failing field as a
// *RowParseError.
func (d *Decoder) check(line int, row any) error {
	err := d.validate.Struct(row)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]

		return domainerrors.NewRowParseError(line, first.Namespace(), errors.Errorf("failed %q check", first.Tag()))
	}

	return domainerrors.NewRowParseError(line, "", errors.WithStack(err))
}
