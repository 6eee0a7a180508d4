package dto

import (
	"time"

	"promptly-be/pkg/highlight"
	"promptly-be/pkg/tagcloud"

	"github.com/google/uuid"
)

type CreatePromptRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Body        string     `json:"body" validate:"required"`
	Tags        []string   `json:"tags"`
	CategoryId  *uuid.UUID `json:"category_id"`
	IsFavorite  bool       `json:"is_favorite"`
}

type CreatePromptResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdatePromptRequest struct {
	Id          uuid.UUID
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Body        string     `json:"body" validate:"required"`
	Tags        []string   `json:"tags"`
	CategoryId  *uuid.UUID `json:"category_id"`
}

type UpdatePromptResponse struct {
	Id uuid.UUID `json:"id"`
}

// ListPromptsRequest carries the filter criteria from query parameters.
type ListPromptsRequest struct {
	CategoryId    *uuid.UUID `query:"category_id"`
	FavoritesOnly bool       `query:"favorites_only"`
	Tags          []string   `query:"tags"`
	Search        string     `query:"search"`
}

type PromptSummary struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	CategoryId  *uuid.UUID `json:"category_id"`
	IsFavorite  bool       `json:"is_favorite"`
	UsageCount  int        `json:"usage_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ListPromptsResponse struct {
	Prompts []*PromptSummary    `json:"prompts"`
	Tags    []tagcloud.TagCount `json:"tags"`
}

type ShowPromptResponse struct {
	Id          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Body        string              `json:"body"`
	Tags        []string            `json:"tags"`
	CategoryId  *uuid.UUID          `json:"category_id"`
	IsFavorite  bool                `json:"is_favorite"`
	UsageCount  int                 `json:"usage_count"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Segments    []highlight.Segment `json:"segments"`
	Variables   []string            `json:"variables"`
}

// UsePromptResponse returns the body for the client to place on the
// clipboard; the usage counter has already been incremented.
type UsePromptResponse struct {
	Id         uuid.UUID `json:"id"`
	Body       string    `json:"body"`
	UsageCount int       `json:"usage_count"`
}

type ToggleFavoriteResponse struct {
	Id         uuid.UUID `json:"id"`
	IsFavorite bool      `json:"is_favorite"`
}
