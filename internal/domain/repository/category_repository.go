package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when the category name is taken.
	ErrDuplicateCategory = errors.New("category already exists")
)

// CategoryRepository defines persistence operations for catalog categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountProducts returns how many products reference the category.
	CountProducts(ctx context.Context, id uuid.UUID) (int64, error)
}
