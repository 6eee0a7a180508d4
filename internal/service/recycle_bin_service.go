// FILE: internal/service/recycle_bin_service.go
package service

import (
	"context"
	"log"
	"time"

	"promptly-be/internal/dto"
	"promptly-be/internal/entity"
	"promptly-be/internal/repository/specification"
	"promptly-be/internal/repository/unitofwork"
	"promptly-be/pkg/events"

	"github.com/google/uuid"
)

type IRecycleBinService interface {
	MoveToRecycleBin(ctx context.Context, promptId uuid.UUID) error
	MoveManyToRecycleBin(ctx context.Context, promptIds []uuid.UUID) error
	RestorePrompt(ctx context.Context, itemId uuid.UUID) (*dto.RestorePromptResponse, error)
	RestorePrompts(ctx context.Context, itemIds []uuid.UUID) ([]*dto.RestorePromptResponse, error)
	PermanentlyDelete(ctx context.Context, itemId uuid.UUID) error
	PermanentlyDeleteMany(ctx context.Context, itemIds []uuid.UUID) error
	EmptyRecycleBin(ctx context.Context) error
	CleanupExpiredItems(ctx context.Context) (int, error)
	GetAllRecycleBinItems(ctx context.Context) ([]*dto.RecycleBinItemResponse, error)
	GetRecycleBinCount(ctx context.Context) (int64, error)
	GetItemsExpiringSoon(ctx context.Context) ([]*dto.RecycleBinItemResponse, error)
}

type recycleBinService struct {
	uowFactory unitofwork.RepositoryFactory
	bus        *events.Bus
}

func NewRecycleBinService(uowFactory unitofwork.RepositoryFactory, bus *events.Bus) IRecycleBinService {
	return &recycleBinService{
		uowFactory: uowFactory,
		bus:        bus,
	}
}

// MoveToRecycleBin snapshots the prompt into the bin and removes the
// original. Snapshot insert and prompt delete land in one commit so a crash
// in between cannot leave two copies or none.
func (s *recycleBinService) MoveToRecycleBin(ctx context.Context, promptId uuid.UUID) error {
	return s.MoveManyToRecycleBin(ctx, []uuid.UUID{promptId})
}

func (s *recycleBinService) MoveManyToRecycleBin(ctx context.Context, promptIds []uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompts, err := uow.PromptRepository().FindAll(ctx, specification.ByIDs{IDs: promptIds})
	if err != nil {
		return err
	}
	if len(prompts) == 0 {
		return ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	deletedAt := time.Now()
	for _, prompt := range prompts {
		category, err := s.resolveCategory(ctx, uow, prompt.CategoryId)
		if err != nil {
			return err
		}

		item := entity.NewRecycleBinItem(prompt, category, deletedAt)
		if err := uow.RecycleBinRepository().Create(ctx, item); err != nil {
			return err
		}
		if err := uow.PromptRepository().Delete(ctx, prompt.Id); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	for _, prompt := range prompts {
		s.publish(ctx, events.PromptMovedToBin, map[string]interface{}{
			"prompt_id": prompt.Id,
			"title":     prompt.Title,
		})
	}

	return nil
}

// RestorePrompt rebuilds a prompt from its snapshot. The original category is
// resolved by id against the live collection; when it no longer exists the
// prompt comes back uncategorized. The restored prompt gets a new identity.
func (s *recycleBinService) RestorePrompt(ctx context.Context, itemId uuid.UUID) (*dto.RestorePromptResponse, error) {
	restored, err := s.RestorePrompts(ctx, []uuid.UUID{itemId})
	if err != nil {
		return nil, err
	}
	return restored[0], nil
}

func (s *recycleBinService) RestorePrompts(ctx context.Context, itemIds []uuid.UUID) ([]*dto.RestorePromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.RecycleBinRepository().FindAll(ctx, specification.ByIDs{IDs: itemIds})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	restored := make([]*dto.RestorePromptResponse, 0, len(items))
	for _, item := range items {
		category, err := s.resolveCategory(ctx, uow, item.CategoryId)
		if err != nil {
			return nil, err
		}

		prompt := item.RestoreToPrompt(category)
		if err := uow.PromptRepository().Create(ctx, prompt); err != nil {
			return nil, err
		}
		if err := uow.RecycleBinRepository().Delete(ctx, item.Id); err != nil {
			return nil, err
		}

		restored = append(restored, &dto.RestorePromptResponse{Id: prompt.Id})
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	for _, res := range restored {
		s.publish(ctx, events.PromptRestored, map[string]interface{}{
			"prompt_id": res.Id,
		})
	}

	return restored, nil
}

func (s *recycleBinService) PermanentlyDelete(ctx context.Context, itemId uuid.UUID) error {
	return s.PermanentlyDeleteMany(ctx, []uuid.UUID{itemId})
}

func (s *recycleBinService) PermanentlyDeleteMany(ctx context.Context, itemIds []uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.RecycleBinRepository().DeleteMany(ctx, itemIds); err != nil {
		return err
	}

	s.publish(ctx, events.RecycleBinPurged, map[string]interface{}{
		"count": len(itemIds),
	})
	return nil
}

func (s *recycleBinService) EmptyRecycleBin(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.RecycleBinRepository().FindAll(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.Id
	}

	if err := uow.RecycleBinRepository().DeleteMany(ctx, ids); err != nil {
		return err
	}

	s.publish(ctx, events.RecycleBinPurged, map[string]interface{}{
		"count": len(ids),
	})
	return nil
}

// CleanupExpiredItems removes items past their retention window. It writes
// only when the expired set is non-empty, so back-to-back sweeps with no time
// passing cost a single write at most.
func (s *recycleBinService) CleanupExpiredItems(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.RecycleBinRepository().FindAll(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	expired := make([]uuid.UUID, 0)
	for _, item := range items {
		if item.ShouldAutoDelete(now) {
			expired = append(expired, item.Id)
		}
	}

	if len(expired) == 0 {
		return 0, nil
	}

	if err := uow.RecycleBinRepository().DeleteMany(ctx, expired); err != nil {
		return 0, err
	}

	s.publish(ctx, events.RecycleBinPurged, map[string]interface{}{
		"count":   len(expired),
		"expired": true,
	})
	return len(expired), nil
}

func (s *recycleBinService) GetAllRecycleBinItems(ctx context.Context) ([]*dto.RecycleBinItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.RecycleBinRepository().FindAll(ctx, specification.DeletedAtDesc{})
	if err != nil {
		return nil, err
	}

	return s.toResponses(items), nil
}

func (s *recycleBinService) GetRecycleBinCount(ctx context.Context) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.RecycleBinRepository().Count(ctx)
}

func (s *recycleBinService) GetItemsExpiringSoon(ctx context.Context) ([]*dto.RecycleBinItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.RecycleBinRepository().FindAll(ctx, specification.DeletedAtDesc{})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	soon := make([]*entity.RecycleBinItem, 0)
	for _, item := range items {
		if item.ExpiringSoon(now) {
			soon = append(soon, item)
		}
	}

	return s.toResponses(soon), nil
}

func (s *recycleBinService) resolveCategory(ctx context.Context, uow unitofwork.UnitOfWork, categoryId *uuid.UUID) (*entity.Category, error) {
	if categoryId == nil {
		return nil, nil
	}
	// A missing category is not an error here: snapshots and restores degrade
	// to uncategorized.
	return uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *categoryId})
}

func (s *recycleBinService) toResponses(items []*entity.RecycleBinItem) []*dto.RecycleBinItemResponse {
	now := time.Now()
	responses := make([]*dto.RecycleBinItemResponse, len(items))
	for i, item := range items {
		responses[i] = &dto.RecycleBinItemResponse{
			Id:                  item.Id,
			OriginalPromptId:    item.OriginalPromptId,
			Title:               item.Title,
			Description:         item.Description,
			Body:                item.Body,
			Tags:                item.Tags,
			IsFavorite:          item.IsFavorite,
			UsageCount:          item.UsageCount,
			CategoryId:          item.CategoryId,
			CategoryName:        item.CategoryName,
			CategoryColor:       item.CategoryColor,
			CategoryIconName:    item.CategoryIconName,
			OriginalCreatedAt:   item.OriginalCreatedAt,
			OriginalUpdatedAt:   item.OriginalUpdatedAt,
			DeletedAt:           item.DeletedAt,
			AutoDeleteAt:        item.AutoDeleteAt,
			DaysUntilAutoDelete: item.DaysUntilAutoDelete(now),
			ExpiringSoon:        item.ExpiringSoon(now),
		}
	}
	return responses
}

func (s *recycleBinService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.bus == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	// Event delivery is auxiliary; a failed publish must not fail the mutation.
	if err := s.bus.Publish(ctx, evt); err != nil {
		log.Printf("[WARN] Failed to publish %s event: %v", eventType, err)
	}
}
