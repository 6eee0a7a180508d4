package entity

import (
	"time"

	"github.com/google/uuid"
)

// RetentionPeriod is how long a deleted prompt stays recoverable.
const RetentionPeriod = 30 * 24 * time.Hour

// ExpiringSoonWindow marks items whose purge is close enough to warn about.
const ExpiringSoonWindow = 7

// RecycleBinItem is a denormalized snapshot of a deleted prompt. The category
// fields are copied at deletion time so the snapshot survives later category
// edits or deletes.
type RecycleBinItem struct {
	Id               uuid.UUID
	OriginalPromptId uuid.UUID

	Title       string
	Description string
	Body        string
	Tags        []string
	IsFavorite  bool
	UsageCount  int

	CategoryId       *uuid.UUID
	CategoryName     *string
	CategoryColor    *string
	CategoryIconName *string

	OriginalCreatedAt time.Time
	OriginalUpdatedAt time.Time
	DeletedAt         time.Time
	AutoDeleteAt      time.Time
}

// NewRecycleBinItem snapshots a prompt at deletion time. AutoDeleteAt is fixed
// at deletedAt + RetentionPeriod and never recomputed.
func NewRecycleBinItem(prompt *Prompt, category *Category, deletedAt time.Time) *RecycleBinItem {
	item := &RecycleBinItem{
		Id:                uuid.New(),
		OriginalPromptId:  prompt.Id,
		Title:             prompt.Title,
		Description:       prompt.Description,
		Body:              prompt.Body,
		Tags:              append([]string(nil), prompt.Tags...),
		IsFavorite:        prompt.IsFavorite,
		UsageCount:        prompt.UsageCount,
		OriginalCreatedAt: prompt.CreatedAt,
		OriginalUpdatedAt: prompt.UpdatedAt,
		DeletedAt:         deletedAt,
		AutoDeleteAt:      deletedAt.Add(RetentionPeriod),
	}

	if category != nil {
		id := category.Id
		name := category.Name
		color := category.Color
		icon := category.IconName
		item.CategoryId = &id
		item.CategoryName = &name
		item.CategoryColor = &color
		item.CategoryIconName = &icon
	}

	return item
}

// RestoreToPrompt builds a new prompt from the snapshot. The prompt gets a
// fresh identity; original timestamps and usage count carry over so a restore
// does not look like a fresh creation. The category may be nil when the
// original category no longer exists.
func (i *RecycleBinItem) RestoreToPrompt(category *Category) *Prompt {
	prompt := &Prompt{
		Id:          uuid.New(),
		Title:       i.Title,
		Description: i.Description,
		Body:        i.Body,
		Tags:        append([]string(nil), i.Tags...),
		IsFavorite:  i.IsFavorite,
		UsageCount:  i.UsageCount,
		CreatedAt:   i.OriginalCreatedAt,
		UpdatedAt:   i.OriginalUpdatedAt,
	}
	if category != nil {
		id := category.Id
		prompt.CategoryId = &id
	}
	return prompt
}

// ShouldAutoDelete reports whether the retention window has elapsed.
func (i *RecycleBinItem) ShouldAutoDelete(now time.Time) bool {
	return !now.Before(i.AutoDeleteAt)
}

// DaysUntilAutoDelete returns the number of whole days left before the item
// is purged, clamped at zero.
func (i *RecycleBinItem) DaysUntilAutoDelete(now time.Time) int {
	remaining := i.AutoDeleteAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(remaining / (24 * time.Hour))
}

// ExpiringSoon reports items within the warning window but not yet expired.
func (i *RecycleBinItem) ExpiringSoon(now time.Time) bool {
	days := i.DaysUntilAutoDelete(now)
	return days > 0 && days <= ExpiringSoonWindow
}
