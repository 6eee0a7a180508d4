package service

import (
	"context"
	"testing"
	"time"

	"promptly-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompt(store *fakeStore, title string, categoryId *uuid.UUID) *entity.Prompt {
	prompt := &entity.Prompt{
		Id:          uuid.New(),
		Title:       title,
		Description: "desc",
		Body:        "body of " + title,
		Tags:        []string{"alpha", "beta"},
		CategoryId:  categoryId,
		UsageCount:  3,
		CreatedAt:   time.Now().Add(-48 * time.Hour),
		UpdatedAt:   time.Now().Add(-24 * time.Hour),
	}
	store.prompts[prompt.Id] = prompt
	return prompt
}

func newTestCategory(store *fakeStore, name string) *entity.Category {
	category := &entity.Category{
		Id:        uuid.New(),
		Name:      name,
		Color:     "blue",
		IconName:  "pencil",
		CreatedAt: time.Now(),
	}
	store.categories[category.Id] = category
	return category
}

func TestMoveToRecycleBinSnapshotsAndRemovesPrompt(t *testing.T) {
	store := newFakeStore()
	category := newTestCategory(store, "Writing")
	prompt := newTestPrompt(store, "Email Summary", &category.Id)

	svc := NewRecycleBinService(&fakeFactory{store: store}, nil)

	err := svc.MoveToRecycleBin(context.Background(), prompt.Id)
	require.NoError(t, err)

	assert.Empty(t, store.prompts, "prompt should leave the active collection")
	require.Len(t, store.binItems, 1)

	var item *entity.RecycleBinItem
	for _, v := range store.binItems {
		item = v
	}
	assert.Equal(t, prompt.Id, item.OriginalPromptId)
	assert.Equal(t, "Email Summary", item.Title)
	assert.Equal(t, prompt.UsageCount, item.UsageCount)
	require.NotNil(t, item.CategoryName)
	assert.Equal(t, "Writing", *item.CategoryName)
	assert.Equal(t, item.DeletedAt.Add(entity.RetentionPeriod), item.AutoDeleteAt)
}

func TestMoveToRecycleBinUnknownPrompt(t *testing.T) {
	store := newFakeStore()
	svc := NewRecycleBinService(&fakeFactory{store: store}, nil)

	err := svc.MoveToRecycleBin(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoveManyToRecycleBin(t *testing.T) {
	store := newFakeStore()
	first := newTestPrompt(store, "First", nil)
	second := newTestPrompt(store, "Second", nil)
	kept := newTestPrompt(store, "Kept", nil)

	svc := NewRecycleBinService(&fakeFactory{store: store}, nil)

	err := svc.MoveManyToRecycleBin(context.Background(), []uuid.UUID{first.Id, second.Id})
	require.NoError(t, err)

	assert.Len(t, store.binItems, 2)
	require.Len(t, store.prompts, 1)
	assert.Contains(t, store.prompts, kept.Id)
}

func TestRestorePromptGetsFreshIdentity(t *testing.T) {
	store := newFakeStore()
	category := newTestCategory(store, "Code")
	prompt := newTestPrompt(store, "Refactor Helper", &category.Id)
	originalId := prompt.Id
	originalCreatedAt := prompt.CreatedAt

	svc := NewRecycleBinService(&fakeFactory{store: store}, nil)
	require.NoError(t, svc.MoveToRecycleBin(context.Background(), prompt.Id))

	items, err := svc.GetAllRecycleBinItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	restored, err := svc.RestorePrompt(context.Background(), items[0].Id)
	require.NoError(t, err)

	assert.NotEqual(t, originalId, restored.Id, "restored prompt must get a new identity")
	assert.Empty(t, store.binItems, "snapshot is consumed on restore")

	back := store.prompts[restored.Id]
	require.NotNil(t, back)
	assert.Equal(t, "Refactor Helper", back.Title)
	assert.Equal(t, 3, back.UsageCount)
	assert.True(t, back.CreatedAt.Equal(originalCreatedAt), "original timestamps carry over")
	require.NotNil(t, back.CategoryId)
	assert.Equal(t, category.Id, *back.CategoryId)
}

func TestRestorePromptAfterCategoryDeleted(t *testing.T) {
	store := newFakeStore()
	category := newTestCategory(store, "Doomed")
	prompt := newTestPrompt(store, "Orphan", &category.Id)

	svc := NewRecycleBinService(&fakeFactory{store: store}, nil)
	require.NoError(t, svc.MoveToRecycleBin(context.Background(), prompt.Id))

	delete(store.categories, category.Id)

	items, err := svc.GetAllRecycleBinItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	restored, err := svc.RestorePrompt(context.Background(), items[0].Id)
	require.NoError(t, err)

	back := store.prompts[restored.Id]
	require.NotNil(t, back)
	assert.Nil(t, back.CategoryId, "missing category degrades to uncategorized")
}

func TestRestorePromptUnknownItem(t *testing.T) {
	store := newFakeStore()
	svc := NewRecycleBinService(&fakeFactory{store: store}, nil)

	_, err := svc.RestorePrompt(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPermanentlyDeleteRemovesSnapshotOnly(t *testing.T) {
	store := newFakeStore()
	doomed := newTestPrompt(store, "Doomed", nil)
	survivor := newTestPrompt(store, "Survivor", nil)

	svc := NewRecycleBinService(&fakeFactory{store: store}, nil)
	require.NoError(t, svc.MoveManyToRecycleBin(context.Background(), []uuid.UUID{doomed.Id, survivor.Id}))

	items, err := svc.GetAllRecycleBinItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, svc.PermanentlyDelete(context.Background(), items[0].Id))

	assert.Len(t, store.binItems, 1)
	assert.Empty(t, store.prompts, "permanent delete never resurrects prompts")
}

func TestEmptyRecycleBin(t *testing.T) {
	store := newFakeStore()
	first := newTestPrompt(store, "First", nil)
	second := newTestPrompt(store, "Second", nil)

	svc := NewRecycleBinService(&fakeFactory{store: store}, nil)
	require.NoError(t, svc.MoveManyToRecycleBin(context.Background(), []uuid.UUID{first.Id, second.Id}))

	require.NoError(t, svc.EmptyRecycleBin(context.Background()))
	assert.Empty(t, store.binItems)

	// Emptying an already empty bin is a no-op.
	require.NoError(t, svc.EmptyRecycleBin(context.Background()))
}

func TestCleanupExpiredItems(t *testing.T) {
	store := newFakeStore()
	now := time.Now()

	expired := &entity.RecycleBinItem{
		Id:           uuid.New(),
		Title:        "Ancient",
		DeletedAt:    now.Add(-entity.RetentionPeriod - time.Hour),
		AutoDeleteAt: now.Add(-time.Hour),
	}
	fresh := &entity.RecycleBinItem{
		Id:           uuid.New(),
		Title:        "Fresh",
		DeletedAt:    now,
		AutoDeleteAt: now.Add(entity.RetentionPeriod),
	}
	store.binItems[expired.Id] = expired
	store.binItems[fresh.Id] = fresh

	svc := NewRecycleBinService(&fakeFactory{store: store}, nil)

	purged, err := svc.CleanupExpiredItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, purged)
	assert.NotContains(t, store.binItems, expired.Id)
	assert.Contains(t, store.binItems, fresh.Id)

	// A second sweep with no time passing removes nothing.
	purged, err = svc.CleanupExpiredItems(context.Background())
	require.NoError(t, err)
	assert.Zero(t, purged)
	assert.Len(t, store.binItems, 1)
}

func TestGetAllRecycleBinItemsOrdering(t *testing.T) {
	store := newFakeStore()
	now := time.Now()

	older := &entity.RecycleBinItem{
		Id:           uuid.New(),
		Title:        "Older",
		DeletedAt:    now.Add(-2 * time.Hour),
		AutoDeleteAt: now.Add(entity.RetentionPeriod),
	}
	newer := &entity.RecycleBinItem{
		Id:           uuid.New(),
		Title:        "Newer",
		DeletedAt:    now.Add(-time.Hour),
		AutoDeleteAt: now.Add(entity.RetentionPeriod),
	}
	store.binItems[older.Id] = older
	store.binItems[newer.Id] = newer

	svc := NewRecycleBinService(&fakeFactory{store: store}, nil)

	items, err := svc.GetAllRecycleBinItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Newer", items[0].Title, "most recently deleted first")
	assert.Equal(t, "Older", items[1].Title)
}

func TestGetItemsExpiringSoon(t *testing.T) {
	store := newFakeStore()
	now := time.Now()

	soon := &entity.RecycleBinItem{
		Id:           uuid.New(),
		Title:        "Soon",
		DeletedAt:    now.Add(-27 * 24 * time.Hour),
		AutoDeleteAt: now.Add(3 * 24 * time.Hour),
	}
	distant := &entity.RecycleBinItem{
		Id:           uuid.New(),
		Title:        "Distant",
		DeletedAt:    now,
		AutoDeleteAt: now.Add(entity.RetentionPeriod),
	}
	store.binItems[soon.Id] = soon
	store.binItems[distant.Id] = distant

	svc := NewRecycleBinService(&fakeFactory{store: store}, nil)

	items, err := svc.GetItemsExpiringSoon(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Soon", items[0].Title)
	assert.True(t, items[0].ExpiringSoon)
	assert.LessOrEqual(t, items[0].DaysUntilAutoDelete, entity.ExpiringSoonWindow)
}

func TestGetRecycleBinCount(t *testing.T) {
	store := newFakeStore()
	svc := NewRecycleBinService(&fakeFactory{store: store}, nil)

	count, err := svc.GetRecycleBinCount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	prompt := newTestPrompt(store, "Counted", nil)
	require.NoError(t, svc.MoveToRecycleBin(context.Background(), prompt.Id))

	count, err = svc.GetRecycleBinCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
