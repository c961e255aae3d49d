package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. A CHECK constraint keeps stock >= 0.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text;not null;default:''"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	IsActive    bool            `gorm:"not null"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Images []ProductImageModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:text;not null"`
	Alt       string    `gorm:"type:varchar(255);not null;default:''"`
	Position  int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}
