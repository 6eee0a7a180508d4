// FILE: internal/service/category_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"promptly-be/internal/dto"
	"promptly-be/internal/entity"
	"promptly-be/internal/repository/specification"
	"promptly-be/internal/repository/unitofwork"
	"promptly-be/pkg/events"

	"github.com/google/uuid"
)

type ICategoryService interface {
	GetAll(ctx context.Context) ([]*dto.CategoryResponse, error)
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.UpdateCategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IsCategoryInUse(ctx context.Context, id uuid.UUID) (bool, error)
}

type categoryService struct {
	uowFactory unitofwork.RepositoryFactory
	bus        *events.Bus
}

func NewCategoryService(uowFactory unitofwork.RepositoryFactory, bus *events.Bus) ICategoryService {
	return &categoryService{
		uowFactory: uowFactory,
		bus:        bus,
	}
}

func (s *categoryService) GetAll(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		count, err := uow.PromptRepository().Count(ctx, specification.ByCategoryID{CategoryID: category.Id})
		if err != nil {
			return nil, err
		}
		result = append(result, &dto.CategoryResponse{
			Id:          category.Id,
			Name:        category.Name,
			Color:       category.Color,
			IconName:    category.IconName,
			IsDefault:   category.IsDefault,
			PromptCount: count,
			CreatedAt:   category.CreatedAt,
		})
	}

	return result, nil
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be blank", ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	category := entity.Category{
		Id:        uuid.New(),
		Name:      name,
		Color:     req.Color,
		IconName:  req.IconName,
		CreatedAt: time.Now(),
	}

	if err := uow.CategoryRepository().Create(ctx, &category); err != nil {
		return nil, err
	}

	s.publish(ctx, events.CategoryCreated, map[string]interface{}{
		"category_id": category.Id,
		"name":        category.Name,
	})

	return &dto.CreateCategoryResponse{Id: category.Id}, nil
}

func (s *categoryService) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.UpdateCategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be blank", ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	category.Name = name
	category.Color = req.Color
	category.IconName = req.IconName

	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}

	s.publish(ctx, events.CategoryUpdated, map[string]interface{}{
		"category_id": category.Id,
	})

	return &dto.UpdateCategoryResponse{Id: category.Id}, nil
}

// Delete refuses to remove a category that any prompt still references.
// There is no cascade and no reassignment; the caller must move or delete
// the prompts first.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}

	inUse, err := s.IsCategoryInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("%w: %q", ErrCategoryInUse, category.Name)
	}

	if err := uow.CategoryRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, events.CategoryDeleted, map[string]interface{}{
		"category_id": id,
		"name":        category.Name,
	})

	return nil
}

func (s *categoryService) IsCategoryInUse(ctx context.Context, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.PromptRepository().Count(ctx, specification.ByCategoryID{CategoryID: id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *categoryService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.bus == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		log.Printf("[WARN] Failed to publish %s event: %v", eventType, err)
	}
}
