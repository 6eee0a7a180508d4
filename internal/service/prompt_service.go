// FILE: internal/service/prompt_service.go
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
	"promptly-be/pkg/highlight"
	"promptly-be/pkg/promptfilter"

	"github.com/google/uuid"
)

type IPromptService interface {
	Create(ctx context.Context, req *dto.CreatePromptRequest) (*dto.CreatePromptResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowPromptResponse, error)
	List(ctx context.Context, req *dto.ListPromptsRequest) (*dto.ListPromptsResponse, error)
	Update(ctx context.Context, req *dto.UpdatePromptRequest) (*dto.UpdatePromptResponse, error)
	ToggleFavorite(ctx context.Context, id uuid.UUID) (*dto.ToggleFavoriteResponse, error)
	Use(ctx context.Context, id uuid.UUID) (*dto.UsePromptResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type promptService struct {
	uowFactory        unitofwork.RepositoryFactory
	recycleBinService IRecycleBinService
	tagService        ITagService
	bus               *events.Bus
}

func NewPromptService(
	uowFactory unitofwork.RepositoryFactory,
	recycleBinService IRecycleBinService,
	tagService ITagService,
	bus *events.Bus,
) IPromptService {
	return &promptService{
		uowFactory:        uowFactory,
		recycleBinService: recycleBinService,
		tagService:        tagService,
		bus:               bus,
	}
}

func (s *promptService) Create(ctx context.Context, req *dto.CreatePromptRequest) (*dto.CreatePromptResponse, error) {
	if err := validatePromptFields(req.Title, req.Body); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	prompt := entity.Prompt{
		Id:          uuid.New(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Body:        req.Body,
		Tags:        req.Tags,
		CategoryId:  req.CategoryId,
		IsFavorite:  req.IsFavorite,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.PromptRepository().Create(ctx, &prompt); err != nil {
		return nil, err
	}

	s.publish(ctx, events.PromptCreated, map[string]interface{}{
		"prompt_id": prompt.Id,
		"title":     prompt.Title,
	})

	return &dto.CreatePromptResponse{Id: prompt.Id}, nil
}

func (s *promptService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowPromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompt, err := uow.PromptRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, ErrNotFound
	}

	return &dto.ShowPromptResponse{
		Id:          prompt.Id,
		Title:       prompt.Title,
		Description: prompt.Description,
		Body:        prompt.Body,
		Tags:        prompt.Tags,
		CategoryId:  prompt.CategoryId,
		IsFavorite:  prompt.IsFavorite,
		UsageCount:  prompt.UsageCount,
		CreatedAt:   prompt.CreatedAt,
		UpdatedAt:   prompt.UpdatedAt,
		Segments:    highlight.Scan(prompt.Body),
		Variables:   highlight.Variables(prompt.Body),
	}, nil
}

// List fetches the full collection and runs the pure filter engine over it,
// then attaches the tag cloud for the filter UI.
func (s *promptService) List(ctx context.Context, req *dto.ListPromptsRequest) (*dto.ListPromptsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompts, err := uow.PromptRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := promptfilter.Apply(prompts, promptfilter.Criteria{
		CategoryId:    req.CategoryId,
		FavoritesOnly: req.FavoritesOnly,
		SelectedTags:  req.Tags,
		SearchText:    req.Search,
	})

	summaries := make([]*dto.PromptSummary, len(filtered))
	for i, prompt := range filtered {
		summaries[i] = &dto.PromptSummary{
			Id:          prompt.Id,
			Title:       prompt.Title,
			Description: prompt.Description,
			Tags:        prompt.Tags,
			CategoryId:  prompt.CategoryId,
			IsFavorite:  prompt.IsFavorite,
			UsageCount:  prompt.UsageCount,
			CreatedAt:   prompt.CreatedAt,
			UpdatedAt:   prompt.UpdatedAt,
		}
	}

	tags, err := s.tagService.GetTagCloud(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ListPromptsResponse{
		Prompts: summaries,
		Tags:    tags,
	}, nil
}

func (s *promptService) Update(ctx context.Context, req *dto.UpdatePromptRequest) (*dto.UpdatePromptResponse, error) {
	if err := validatePromptFields(req.Title, req.Body); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompt, err := uow.PromptRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, ErrNotFound
	}

	prompt.Title = strings.TrimSpace(req.Title)
	prompt.Description = req.Description
	prompt.Body = req.Body
	prompt.Tags = req.Tags
	prompt.CategoryId = req.CategoryId
	prompt.UpdatedAt = time.Now()

	if err := uow.PromptRepository().Update(ctx, prompt); err != nil {
		return nil, err
	}

	s.publish(ctx, events.PromptUpdated, map[string]interface{}{
		"prompt_id": prompt.Id,
	})

	return &dto.UpdatePromptResponse{Id: prompt.Id}, nil
}

func (s *promptService) ToggleFavorite(ctx context.Context, id uuid.UUID) (*dto.ToggleFavoriteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompt, err := uow.PromptRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, ErrNotFound
	}

	prompt.IsFavorite = !prompt.IsFavorite
	prompt.UpdatedAt = time.Now()

	if err := uow.PromptRepository().Update(ctx, prompt); err != nil {
		return nil, err
	}

	return &dto.ToggleFavoriteResponse{Id: prompt.Id, IsFavorite: prompt.IsFavorite}, nil
}

// Use returns the body for the clipboard and bumps the usage counter. The
// counter only ever grows.
func (s *promptService) Use(ctx context.Context, id uuid.UUID) (*dto.UsePromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompt, err := uow.PromptRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, ErrNotFound
	}

	prompt.UsageCount++
	if err := uow.PromptRepository().Update(ctx, prompt); err != nil {
		return nil, err
	}

	return &dto.UsePromptResponse{
		Id:         prompt.Id,
		Body:       prompt.Body,
		UsageCount: prompt.UsageCount,
	}, nil
}

// Delete is a soft delete: the prompt is handed to the recycle bin, never
// removed directly.
func (s *promptService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.recycleBinService.MoveToRecycleBin(ctx, id)
}

func validatePromptFields(title, body string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title must not be blank", ErrValidation)
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("%w: body must not be blank", ErrValidation)
	}
	return nil
}

func (s *promptService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
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
