package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrStockConflict is returned when a conditional stock decrement matched no row.
	ErrStockConflict = errors.New("insufficient stock")
)

// ProductFilter narrows a product listing.
type ProductFilter struct {
	CategoryID      *uuid.UUID
	IncludeInactive bool
}

// ProductRepository defines persistence operations for products and their images.
type ProductRepository interface {
	// FindByID retrieves a product with its ordered images.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDsForUpdate locks the given product rows (SELECT ... FOR UPDATE) in ascending id
	// order and returns the ones that exist, keyed by id. Must run inside a transaction.
	FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)

	// List returns one page of products, newest first, and the total count.
	List(ctx context.Context, filter ProductFilter, page Page) ([]*entity.Product, int64, error)

	// Create persists a product and its images.
	Create(ctx context.Context, product *entity.Product) error

	// Update saves product fields and replaces its image list.
	Update(ctx context.Context, product *entity.Product) error

	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock subtracts quantity only when enough stock remains.
	// Returns ErrStockConflict when no row was updated.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// IncrementStock adds quantity back. Returns ErrProductNotFound when the product no longer exists.
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
