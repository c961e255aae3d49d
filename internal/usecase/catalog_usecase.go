package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryInput holds the editable fields of a category
type CategoryInput struct {
	Name        string
	Description string
}

// ProductInput holds the editable fields of a product. Images replace the existing gallery
// in the given order.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	IsActive    bool
	CategoryID  uuid.UUID
	Images      []entity.ProductImage
}

// ProductQuery selects a page of the catalog.
type ProductQuery struct {
	CategoryID      *uuid.UUID
	IncludeInactive bool
	Page            PageRequest
}

// ProductList is one page of products.
type ProductList struct {
	Products   []*entity.Product `json:"products"`
	Pagination Pagination        `json:"pagination"`
}

// CatalogUsecase defines catalog browsing and administration
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListProducts(ctx context.Context, query *ProductQuery) (*ProductList, error)
	// GetProduct returns a product; inactive products are hidden unless includeInactive is set.
	GetProduct(ctx context.Context, id uuid.UUID, includeInactive bool) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
