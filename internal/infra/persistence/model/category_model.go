package model

import "time"

// CategoryModel is the GORM-specific struct for the 'categories' table.
// ParentID references another category; nesting stops at two levels.
type CategoryModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null"`
	Slug        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	ParentID    *uint  `gorm:"index"`
	IsActive    bool   `gorm:"not null"`
	SortOrder   int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
