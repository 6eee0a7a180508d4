package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCategoryID struct {
	CategoryID uuid.UUID
}

func (s ByCategoryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryID)
}

type Uncategorized struct{}

func (s Uncategorized) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id IS NULL")
}

type FavoritesOnly struct{}

func (s FavoritesOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_favorite = ?", true)
}

type ByTitle struct {
	Title string
}

func (s ByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}
