package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecycleBinItemResponse struct {
	Id               uuid.UUID `json:"id"`
	OriginalPromptId uuid.UUID `json:"original_prompt_id"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
	IsFavorite  bool     `json:"is_favorite"`
	UsageCount  int      `json:"usage_count"`

	CategoryId       *uuid.UUID `json:"category_id"`
	CategoryName     *string    `json:"category_name"`
	CategoryColor    *string    `json:"category_color"`
	CategoryIconName *string    `json:"category_icon_name"`

	OriginalCreatedAt time.Time `json:"original_created_at"`
	OriginalUpdatedAt time.Time `json:"original_updated_at"`
	DeletedAt         time.Time `json:"deleted_at"`
	AutoDeleteAt      time.Time `json:"auto_delete_at"`

	DaysUntilAutoDelete int  `json:"days_until_auto_delete"`
	ExpiringSoon        bool `json:"expiring_soon"`
}

type MoveToRecycleBinRequest struct {
	Ids []uuid.UUID `json:"ids" validate:"required,min=1"`
}

type RestorePromptsRequest struct {
	Ids []uuid.UUID `json:"ids" validate:"required,min=1"`
}

type RestorePromptResponse struct {
	// Id of the newly created prompt, distinct from the original one.
	Id uuid.UUID `json:"id"`
}

type PermanentlyDeleteRequest struct {
	Ids []uuid.UUID `json:"ids" validate:"required,min=1"`
}

type RecycleBinCountResponse struct {
	Count int64 `json:"count"`
}

type CleanupResponse struct {
	Purged int `json:"purged"`
}
