package implementation

import (
	"context"
	"errors"

	"promptly-be/internal/entity"
	"promptly-be/internal/mapper"
	"promptly-be/internal/model"
	"promptly-be/internal/repository/contract"
	"promptly-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PromptMapper
}

func NewPromptRepository(db *gorm.DB) contract.PromptRepository {
	return &PromptRepositoryImpl{
		db:     db,
		mapper: mapper.NewPromptMapper(),
	}
}

func (r *PromptRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PromptRepositoryImpl) Create(ctx context.Context, prompt *entity.Prompt) error {
	m := r.mapper.ToModel(prompt)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*prompt = *r.mapper.ToEntity(m)
	return nil
}

func (r *PromptRepositoryImpl) Update(ctx context.Context, prompt *entity.Prompt) error {
	m := r.mapper.ToModel(prompt)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*prompt = *r.mapper.ToEntity(m)
	return nil
}

func (r *PromptRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Prompt{}, id).Error
}

func (r *PromptRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Prompt, error) {
	var m model.Prompt
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PromptRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Prompt, error) {
	var models []*model.Prompt
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PromptRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Prompt{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
