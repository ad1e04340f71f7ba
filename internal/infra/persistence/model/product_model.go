package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID              uint            `gorm:"primaryKey;autoIncrement"`
	Name            string          `gorm:"type:varchar(255);not null;index"`
	Price           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description     string          `gorm:"type:text"`
	Category        string          `gorm:"type:varchar(255)"`
	CategoryID      uint            `gorm:"not null;index"`
	Stock           int             `gorm:"not null;default:0"`
	MainImage       string          `gorm:"type:varchar(512)"`
	AvgRating       decimal.Decimal `gorm:"type:decimal(3,2);not null"`
	MetaTitle       string          `gorm:"type:varchar(255)"`
	MetaDescription string          `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Images   []ProductImageModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	MetaTags []ProductMetaTagModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews  []ProductReviewModel  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel is the GORM-specific struct for the 'product_images' table.
type ProductImageModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	ProductID uint   `gorm:"not null;index"`
	Path      string `gorm:"type:varchar(512);not null"`
	IsMain    bool   `gorm:"not null;default:false"`
	SortOrder int    `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ProductMetaTagModel is the GORM-specific struct for the 'product_meta_tags' table.
type ProductMetaTagModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	ProductID uint   `gorm:"not null;index"`
	Tag       string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductMetaTagModel) TableName() string {
	return "product_meta_tags"
}

// ProductReviewModel is the GORM-specific struct for the 'product_reviews' table.
type ProductReviewModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	ProductID    uint   `gorm:"not null;index"`
	ReviewerName string `gorm:"type:varchar(255)"`
	Rating       int    `gorm:"not null;default:0;check:rating >= 0 AND rating <= 5"`
	Comment      string `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductReviewModel) TableName() string {
	return "product_reviews"
}
