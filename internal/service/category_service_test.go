package service

import (
	"context"
	"testing"

	"promptly-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryDeleteGuard(t *testing.T) {
	store := newFakeStore()
	category := newTestCategory(store, "Busy")
	newTestPrompt(store, "Member", &category.Id)

	svc := NewCategoryService(&fakeFactory{store: store}, nil)

	err := svc.Delete(context.Background(), category.Id)
	assert.ErrorIs(t, err, ErrCategoryInUse)
	assert.Contains(t, store.categories, category.Id, "guarded category must survive")
}

func TestCategoryDeleteWhenEmpty(t *testing.T) {
	store := newFakeStore()
	category := newTestCategory(store, "Empty")

	svc := NewCategoryService(&fakeFactory{store: store}, nil)

	require.NoError(t, svc.Delete(context.Background(), category.Id))
	assert.NotContains(t, store.categories, category.Id)
}

func TestCategoryDeleteAfterPromptsMovedToBin(t *testing.T) {
	store := newFakeStore()
	category := newTestCategory(store, "Emptied")
	prompt := newTestPrompt(store, "Member", &category.Id)

	binSvc := NewRecycleBinService(&fakeFactory{store: store}, nil)
	require.NoError(t, binSvc.MoveToRecycleBin(context.Background(), prompt.Id))

	// Recycled prompts no longer hold a live reference to the category.
	svc := NewCategoryService(&fakeFactory{store: store}, nil)
	require.NoError(t, svc.Delete(context.Background(), category.Id))
}

func TestCategoryDeleteUnknown(t *testing.T) {
	store := newFakeStore()
	svc := NewCategoryService(&fakeFactory{store: store}, nil)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryCreateRejectsBlankName(t *testing.T) {
	store := newFakeStore()
	svc := NewCategoryService(&fakeFactory{store: store}, nil)

	_, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{
		Name:     "   ",
		Color:    "blue",
		IconName: "pencil",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, store.categories)
}

func TestCategoryCreateTrimsName(t *testing.T) {
	store := newFakeStore()
	svc := NewCategoryService(&fakeFactory{store: store}, nil)

	res, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{
		Name:     "  Research  ",
		Color:    "teal",
		IconName: "book",
	})
	require.NoError(t, err)

	created := store.categories[res.Id]
	require.NotNil(t, created)
	assert.Equal(t, "Research", created.Name)
}

func TestCategoryUpdate(t *testing.T) {
	store := newFakeStore()
	category := newTestCategory(store, "Old Name")

	svc := NewCategoryService(&fakeFactory{store: store}, nil)

	_, err := svc.Update(context.Background(), &dto.UpdateCategoryRequest{
		Id:       category.Id,
		Name:     "New Name",
		Color:    "green",
		IconName: "leaf",
	})
	require.NoError(t, err)

	updated := store.categories[category.Id]
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "green", updated.Color)
	assert.Equal(t, "leaf", updated.IconName)
}

func TestCategoryGetAllIncludesPromptCounts(t *testing.T) {
	store := newFakeStore()
	busy := newTestCategory(store, "Busy")
	newTestCategory(store, "Idle")
	newTestPrompt(store, "One", &busy.Id)
	newTestPrompt(store, "Two", &busy.Id)
	newTestPrompt(store, "Loose", nil)

	svc := NewCategoryService(&fakeFactory{store: store}, nil)

	categories, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	counts := make(map[string]int64)
	for _, c := range categories {
		counts[c.Name] = c.PromptCount
	}
	assert.Equal(t, int64(2), counts["Busy"])
	assert.Equal(t, int64(0), counts["Idle"])
}
