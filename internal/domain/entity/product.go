package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item sold in the storefront.
type Product struct {
	ID              uint
	Name            string
	Price           decimal.Decimal
	Description     string
	Category        string // Free-text category label as found in the source export.
	CategoryID      uint   // Resolved category reference; never zero after import.
	Stock           int
	MainImage       string
	AvgRating       decimal.Decimal
	MetaTitle       string
	MetaDescription string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Images   []*ProductImage
	MetaTags []*ProductMetaTag
	Reviews  []*ProductReview
}

// ProductImage is an image attached to a product.
type ProductImage struct {
	ID        uint
	ProductID uint
	Path      string
	IsMain    bool
	SortOrder int
}

// ProductMetaTag is a single SEO keyword of a product.
type ProductMetaTag struct {
	ID        uint
	ProductID uint
	Tag       string
}

// ProductReview is a customer review of a product.
type ProductReview struct {
	ID           uint
	ProductID    uint
	ReviewerName string
	Rating       int
	Comment      string
	CreatedAt    time.Time
}

// ProductRef is the minimal projection used to match free-text product names.
type ProductRef struct {
	ID   uint
	Name string
}
