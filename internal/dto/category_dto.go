package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	Color    string `json:"color" validate:"required"`
	IconName string `json:"icon_name" validate:"required"`
}

type CreateCategoryResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateCategoryRequest struct {
	Id       uuid.UUID
	Name     string `json:"name" validate:"required"`
	Color    string `json:"color" validate:"required"`
	IconName string `json:"icon_name" validate:"required"`
}

type UpdateCategoryResponse struct {
	Id uuid.UUID `json:"id"`
}

type CategoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	IconName    string    `json:"icon_name"`
	IsDefault   bool      `json:"is_default"`
	PromptCount int64     `json:"prompt_count"`
	CreatedAt   time.Time `json:"created_at"`
}
