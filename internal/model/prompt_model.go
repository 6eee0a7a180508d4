package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Prompt struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Title       string                      `gorm:"type:varchar(255);not null"`
	Description string                      `gorm:"type:text"`
	Body        string                      `gorm:"type:text;not null"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:json"`
	CategoryId  *uuid.UUID                  `gorm:"type:uuid;index"`
	IsFavorite  bool                        `gorm:"not null;default:false"`
	UsageCount  int                         `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Prompt) TableName() string {
	return "prompts"
}
