package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Color     string    `gorm:"type:varchar(64);not null"`
	IconName  string    `gorm:"type:varchar(64);not null"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (Category) TableName() string {
	return "categories"
}
