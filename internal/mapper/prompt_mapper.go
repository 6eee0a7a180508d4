package mapper

import (
	"promptly-be/internal/entity"
	"promptly-be/internal/model"

	"gorm.io/datatypes"
)

type PromptMapper struct{}

func NewPromptMapper() *PromptMapper {
	return &PromptMapper{}
}

func (m *PromptMapper) ToEntity(p *model.Prompt) *entity.Prompt {
	if p == nil {
		return nil
	}

	return &entity.Prompt{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Body:        p.Body,
		Tags:        append([]string(nil), p.Tags...),
		CategoryId:  p.CategoryId,
		IsFavorite:  p.IsFavorite,
		UsageCount:  p.UsageCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PromptMapper) ToModel(p *entity.Prompt) *model.Prompt {
	if p == nil {
		return nil
	}

	return &model.Prompt{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Body:        p.Body,
		Tags:        datatypes.NewJSONSlice(p.Tags),
		CategoryId:  p.CategoryId,
		IsFavorite:  p.IsFavorite,
		UsageCount:  p.UsageCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PromptMapper) ToEntities(prompts []*model.Prompt) []*entity.Prompt {
	entities := make([]*entity.Prompt, len(prompts))
	for i, p := range prompts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
