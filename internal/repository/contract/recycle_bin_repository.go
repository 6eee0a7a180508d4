package contract

import (
	"context"

	"promptly-be/internal/entity"
	"promptly-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RecycleBinRepository interface {
	Create(ctx context.Context, item *entity.RecycleBinItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RecycleBinItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RecycleBinItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
