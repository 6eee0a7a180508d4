package service

import (
	"context"
	"sort"

	"promptly-be/internal/entity"
	"promptly-be/internal/repository/contract"
	"promptly-be/internal/repository/specification"
	"promptly-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory store shared by the fake repositories. Specifications are
// interpreted by type-switching on the concrete spec types the services use.
type fakeStore struct {
	prompts    map[uuid.UUID]*entity.Prompt
	categories map[uuid.UUID]*entity.Category
	binItems   map[uuid.UUID]*entity.RecycleBinItem
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		prompts:    make(map[uuid.UUID]*entity.Prompt),
		categories: make(map[uuid.UUID]*entity.Category),
		binItems:   make(map[uuid.UUID]*entity.RecycleBinItem),
	}
}

type fakePromptRepository struct {
	store *fakeStore
}

func (r *fakePromptRepository) Create(ctx context.Context, prompt *entity.Prompt) error {
	copied := *prompt
	r.store.prompts[prompt.Id] = &copied
	return nil
}

func (r *fakePromptRepository) Update(ctx context.Context, prompt *entity.Prompt) error {
	copied := *prompt
	r.store.prompts[prompt.Id] = &copied
	return nil
}

func (r *fakePromptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.prompts, id)
	return nil
}

func (r *fakePromptRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Prompt, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakePromptRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Prompt, error) {
	result := make([]*entity.Prompt, 0, len(r.store.prompts))
	for _, prompt := range r.store.prompts {
		if promptMatches(prompt, specs) {
			copied := *prompt
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakePromptRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func promptMatches(prompt *entity.Prompt, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if prompt.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			if !containsID(s.IDs, prompt.Id) {
				return false
			}
		case specification.ByCategoryID:
			if prompt.CategoryId == nil || *prompt.CategoryId != s.CategoryID {
				return false
			}
		case specification.Uncategorized:
			if prompt.CategoryId != nil {
				return false
			}
		case specification.FavoritesOnly:
			if !prompt.IsFavorite {
				return false
			}
		}
	}
	return true
}

type fakeCategoryRepository struct {
	store *fakeStore
}

func (r *fakeCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	copied := *category
	r.store.categories[category.Id] = &copied
	return nil
}

func (r *fakeCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	copied := *category
	r.store.categories[category.Id] = &copied
	return nil
}

func (r *fakeCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.categories, id)
	return nil
}

func (r *fakeCategoryRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeCategoryRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	result := make([]*entity.Category, 0, len(r.store.categories))
	for _, category := range r.store.categories {
		if categoryMatches(category, specs) {
			copied := *category
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeCategoryRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func categoryMatches(category *entity.Category, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if category.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			if !containsID(s.IDs, category.Id) {
				return false
			}
		}
	}
	return true
}

type fakeRecycleBinRepository struct {
	store *fakeStore
}

func (r *fakeRecycleBinRepository) Create(ctx context.Context, item *entity.RecycleBinItem) error {
	copied := *item
	r.store.binItems[item.Id] = &copied
	return nil
}

func (r *fakeRecycleBinRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.binItems, id)
	return nil
}

func (r *fakeRecycleBinRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		delete(r.store.binItems, id)
	}
	return nil
}

func (r *fakeRecycleBinRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RecycleBinItem, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeRecycleBinRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RecycleBinItem, error) {
	result := make([]*entity.RecycleBinItem, 0, len(r.store.binItems))
	for _, item := range r.store.binItems {
		if binItemMatches(item, specs) {
			copied := *item
			result = append(result, &copied)
		}
	}
	if hasDeletedAtDesc(specs) {
		sort.Slice(result, func(i, j int) bool {
			return result[i].DeletedAt.After(result[j].DeletedAt)
		})
	} else {
		sort.Slice(result, func(i, j int) bool {
			return result[i].DeletedAt.Before(result[j].DeletedAt)
		})
	}
	return result, nil
}

func (r *fakeRecycleBinRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func binItemMatches(item *entity.RecycleBinItem, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if item.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			if !containsID(s.IDs, item.Id) {
				return false
			}
		case specification.ExpiredAt:
			if s.Now.Before(item.AutoDeleteAt) {
				return false
			}
		}
	}
	return true
}

func hasDeletedAtDesc(specs []specification.Specification) bool {
	for _, spec := range specs {
		if _, ok := spec.(specification.DeletedAtDesc); ok {
			return true
		}
	}
	return false
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// fakeUnitOfWork treats Begin/Commit/Rollback as no-ops; mutations apply
// directly to the shared store.
type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) PromptRepository() contract.PromptRepository {
	return &fakePromptRepository{store: u.store}
}

func (u *fakeUnitOfWork) CategoryRepository() contract.CategoryRepository {
	return &fakeCategoryRepository{store: u.store}
}

func (u *fakeUnitOfWork) RecycleBinRepository() contract.RecycleBinRepository {
	return &fakeRecycleBinRepository{store: u.store}
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

var _ unitofwork.RepositoryFactory = (*fakeFactory)(nil)
