package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RecycleBinItem struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginalPromptId uuid.UUID `gorm:"type:uuid;not null;index"`

	Title       string                      `gorm:"type:varchar(255);not null"`
	Description string                      `gorm:"type:text"`
	Body        string                      `gorm:"type:text;not null"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:json"`
	IsFavorite  bool                        `gorm:"not null;default:false"`
	UsageCount  int                         `gorm:"not null;default:0"`

	// Category snapshot at deletion time. Kept as plain columns, not a foreign
	// key, so the row stays intact when the category is later edited or deleted.
	CategoryId       *uuid.UUID `gorm:"type:uuid"`
	CategoryName     *string    `gorm:"type:varchar(255)"`
	CategoryColor    *string    `gorm:"type:varchar(64)"`
	CategoryIconName *string    `gorm:"type:varchar(64)"`

	OriginalCreatedAt time.Time `gorm:"not null"`
	OriginalUpdatedAt time.Time `gorm:"not null"`
	DeletedAt         time.Time `gorm:"not null;index"`
	AutoDeleteAt      time.Time `gorm:"not null;index"`
}

func (RecycleBinItem) TableName() string {
	return "recycle_bin_items"
}
