package csvimport

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	metaTagPrefix = "metaTags"
	reviewPrefix  = "reviews[0]."
	maxRating     = 5
)

// ProductRow is a decoded product export row.
type ProductRow struct {
	Line            int
	Name            string `validate:"required,max=255"`
	Price           decimal.Decimal
	Description     string
	Category        string
	Stock           int `validate:"gte=0"`
	AvgRating       decimal.Decimal
	MetaTitle       string
	MetaDescription string
	MainImage       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	MetaTags        []string
	Review          *ReviewRow
}

// ReviewRow is the optional embedded review of a product row.
type ReviewRow struct {
	Name      string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// DecodeProduct decodes a product record.
func (d *Decoder) DecodeProduct(rec Record) (*ProductRow, error) {
	row := &ProductRow{
		Line:            rec.Line,
		Name:            rec.Get("name"),
		Price:           ToDecimal(rec.Get("price"), decimal.Zero),
		Description:     rec.Get("description"),
		Category:        rec.Get("category"),
		Stock:           ToInt(rec.Get("stock"), 0),
		AvgRating:       ToDecimal(rec.Get("avgRating"), decimal.Zero),
		MetaTitle:       rec.Get("metaTitle"),
		MetaDescription: rec.Get("metaDescription"),
		MainImage:       d.image(rec.Get("mainImage")),
		CreatedAt:       d.timestamp(rec.Get("createdAt")),
		UpdatedAt:       d.timestamp(rec.Get("updatedAt")),
	}

	for _, field := range rec.WithPrefix(metaTagPrefix) {
		if field.Value != "" {
			row.MetaTags = append(row.MetaTags, field.Value)
		}
	}

	reviewName := rec.Get(reviewPrefix + "name")
	reviewRating := rec.Get(reviewPrefix + "rating")
	reviewComment := rec.Get(reviewPrefix + "comment")
	if reviewName != "" || reviewRating != "" || reviewComment != "" {
		row.Review = &ReviewRow{
			Name:      reviewName,
			Rating:    min(max(ToInt(reviewRating, 0), 0), maxRating),
			Comment:   reviewComment,
			CreatedAt: d.timestamp(rec.Get(reviewPrefix + "createdAt")),
		}
	}

	if err := d.check(rec.Line, row); err != nil {
		return nil, err
	}

	return row, nil
}
