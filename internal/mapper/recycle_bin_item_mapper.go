package mapper

import (
	"promptly-be/internal/entity"
	"promptly-be/internal/model"

	"gorm.io/datatypes"
)

type RecycleBinItemMapper struct{}

func NewRecycleBinItemMapper() *RecycleBinItemMapper {
	return &RecycleBinItemMapper{}
}

func (m *RecycleBinItemMapper) ToEntity(i *model.RecycleBinItem) *entity.RecycleBinItem {
	if i == nil {
		return nil
	}

	return &entity.RecycleBinItem{
		Id:                i.Id,
		OriginalPromptId:  i.OriginalPromptId,
		Title:             i.Title,
		Description:       i.Description,
		Body:              i.Body,
		Tags:              append([]string(nil), i.Tags...),
		IsFavorite:        i.IsFavorite,
		UsageCount:        i.UsageCount,
		CategoryId:        i.CategoryId,
		CategoryName:      i.CategoryName,
		CategoryColor:     i.CategoryColor,
		CategoryIconName:  i.CategoryIconName,
		OriginalCreatedAt: i.OriginalCreatedAt,
		OriginalUpdatedAt: i.OriginalUpdatedAt,
		DeletedAt:         i.DeletedAt,
		AutoDeleteAt:      i.AutoDeleteAt,
	}
}

func (m *RecycleBinItemMapper) ToModel(i *entity.RecycleBinItem) *model.RecycleBinItem {
	if i == nil {
		return nil
	}

	return &model.RecycleBinItem{
		Id:                i.Id,
		OriginalPromptId:  i.OriginalPromptId,
		Title:             i.Title,
		Description:       i.Description,
		Body:              i.Body,
		Tags:              datatypes.NewJSONSlice(i.Tags),
		IsFavorite:        i.IsFavorite,
		UsageCount:        i.UsageCount,
		CategoryId:        i.CategoryId,
		CategoryName:      i.CategoryName,
		CategoryColor:     i.CategoryColor,
		CategoryIconName:  i.CategoryIconName,
		OriginalCreatedAt: i.OriginalCreatedAt,
		OriginalUpdatedAt: i.OriginalUpdatedAt,
		DeletedAt:         i.DeletedAt,
		AutoDeleteAt:      i.AutoDeleteAt,
	}
}

func (m *RecycleBinItemMapper) ToEntities(items []*model.RecycleBinItem) []*entity.RecycleBinItem {
	entities := make([]*entity.RecycleBinItem, len(items))
	for i, item := range items {
		entities[i] = m.ToEntity(item)
	}
	return entities
}
