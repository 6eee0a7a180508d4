package contract

import (
	"context"

	"promptly-be/internal/entity"
	"promptly-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
