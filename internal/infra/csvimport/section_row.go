package csvimport

import (
	"encoding/json"

	domainerrors "megaskyshop/internal/domain/errors"
)

// SectionRow is a decoded homepage section seed row.
type SectionRow struct {
	Line           int
	SectionName    string `validate:"required,max=100"`
	Title          string
	Subtitle       string
	Content        string
	ButtonText     string
	ButtonURL      string `validate:"omitempty,max=2048"`
	AdditionalData map[string]any
	IsActive       bool
	SortOrder      int
}

// DecodeSection decodes a homepage section record. additionalData must be
// empty or a JSON object.
func (d *Decoder) DecodeSection(rec Record) (*SectionRow, error) {
	row := &SectionRow{
		Line:        rec.Line,
		SectionName: rec.Get("sectionName"),
		Title:       rec.Get("title"),
		Subtitle:    rec.Get("subtitle"),
		Content:     rec.Get("content"),
		ButtonText:  rec.Get("buttonText"),
		ButtonURL:   rec.Get("buttonUrl"),
		IsActive:    ToBool(rec.Get("isActive"), true),
		SortOrder:   ToInt(rec.Get("sortOrder"), 0),
	}

	if raw := rec.Get("additionalData"); raw != "" {
		var data map[string]any
		if err := json.Unmarshal([]byte(raw), &data); err != nil || data == nil {
			return nil, domainerrors.NewRowParseError(rec.Line, "additionalData", domainerrors.ErrInvalidAdditionalData)
		}
		row.AdditionalData = data
	}

	if err := d.check(rec.Line, row); err != nil {
		return nil, err
	}

	return row, nil
}
