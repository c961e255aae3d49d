package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an orderable catalog item.
// Stock is never negative. Administrators set it; checkout and order deletion adjust it.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	IsActive    bool            `json:"isActive"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Images      []ProductImage  `json:"images"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// IsOrderable reports whether the product may appear on a new order.
func (p *Product) IsOrderable() bool {
	return p != nil && p.IsActive
}

// ProductImage is one entry of a product's ordered gallery.
type ProductImage struct {
	URL      string `json:"url"`
	Alt      string `json:"alt"`
	Position int    `json:"position"`
}
