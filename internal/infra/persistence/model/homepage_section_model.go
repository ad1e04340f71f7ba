package model

import (
	"time"

	"gorm.io/datatypes"
)

// HomepageSectionModel is the GORM-specific struct for the 'homepage_sections' table.
// SectionName is indexed but deliberately not unique; duplicates are
// removed by the section dedup command.
type HomepageSectionModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	SectionName    string `gorm:"type:varchar(100);not null;index"`
	Title          string `gorm:"type:varchar(255)"`
	Subtitle       string `gorm:"type:varchar(255)"`
	Content        string `gorm:"type:text"`
	ButtonText     string `gorm:"type:varchar(100)"`
	ButtonURL      string `gorm:"column:button_url;type:varchar(2048)"`
	AdditionalData datatypes.JSONMap
	IsActive       bool `gorm:"not null"`
	SortOrder      int  `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (HomepageSectionModel) TableName() string {
	return "homepage_sections"
}
