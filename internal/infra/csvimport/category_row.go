package csvimport

// CategoryRow is a decoded category seed row.
type CategoryRow struct {
	Line        int
	Name        string `validate:"required,max=255"`
	Slug        string `validate:"omitempty,max=255"`
	Description string
	Parent      string
	IsActive    bool
	SortOrder   int
}

// DecodeCategory decodes a category record. Categories are active unless
// the source says otherwise.
func (d *Decoder) DecodeCategory(rec Record) (*CategoryRow, error) {
	row := &CategoryRow{
		Line:        rec.Line,
		Name:        rec.Get("name"),
		Slug:        rec.Get("slug"),
		Description: rec.Get("description"),
		Parent:      rec.Get("parent"),
		IsActive:    ToBool(rec.Get("isActive"), true),
		SortOrder:   ToInt(rec.Get("sortOrder"), 0),
	}

	if err := d.check(rec.Line, row); err != nil {
		return nil, err
	}

	return row, nil
}
