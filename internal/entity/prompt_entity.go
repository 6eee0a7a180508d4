package entity

import (
	"time"

	"github.com/google/uuid"
)

type Prompt struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string
	Description string
	Body        string
	Tags        []string
	CategoryId  *uuid.UUID `gorm:"type:uuid;index"`
	IsFavorite  bool
	UsageCount  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
