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

type RecycleBinRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecycleBinItemMapper
}

func NewRecycleBinRepository(db *gorm.DB) contract.RecycleBinRepository {
	return &RecycleBinRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecycleBinItemMapper(),
	}
}

func (r *RecycleBinRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecycleBinRepositoryImpl) Create(ctx context.Context, item *entity.RecycleBinItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *RecycleBinRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RecycleBinItem{}, id).Error
}

func (r *RecycleBinRepositoryImpl) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.RecycleBinItem{}).Error
}

func (r *RecycleBinRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RecycleBinItem, error) {
	var m model.RecycleBinItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RecycleBinRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RecycleBinItem, error) {
	var models []*model.RecycleBinItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RecycleBinRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RecycleBinItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
