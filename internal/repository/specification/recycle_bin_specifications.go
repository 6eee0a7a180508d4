package specification

import (
	"time"

	"gorm.io/gorm"
)

// ExpiredAt matches items whose retention window has elapsed at the given time.
type ExpiredAt struct {
	Now time.Time
}

func (s ExpiredAt) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("auto_delete_at <= ?", s.Now)
}

// DeletedAtDesc orders bin items most recently deleted first.
type DeletedAtDesc struct{}

func (s DeletedAtDesc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("deleted_at DESC")
}
