package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Guest orders have a NULL user_id and fill the
// customer_* contact columns instead.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          *uuid.UUID      `gorm:"type:uuid;index"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:PENDING"`
	PaymentStatus   string          `gorm:"type:varchar(20);not null;default:PENDING"`
	PaymentMethod   string          `gorm:"type:varchar(50);not null"`
	ShippingAddress string          `gorm:"type:text;not null"`
	BillingAddress  string          `gorm:"type:text;not null"`
	CustomerName    *string         `gorm:"type:varchar(200)"`
	CustomerPhone   *string         `gorm:"type:varchar(50)"`
	Governorate     *string         `gorm:"type:varchar(100)"`
	GuestAddress    *string         `gorm:"type:text"`
	Note            *string         `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"index"`
	UpdatedAt       time.Time

	User  *UserModel       `gorm:"foreignKey:UserID"`
	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. product_id is set to NULL when the
// product is deleted; price is the snapshot taken when the order was placed.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID      `gorm:"type:uuid;index"`
	LineNo    int             `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderEventModel mirrors the 'order_events' table. It has no foreign key to orders so
// the timeline of a deleted order is kept.
type OrderEventModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type          string          `gorm:"type:varchar(50);not null"`
	Status        string          `gorm:"type:varchar(20);not null"`
	PaymentStatus string          `gorm:"type:varchar(20);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ActorID       *uuid.UUID      `gorm:"type:uuid"`
	OccurredAt    time.Time       `gorm:"not null"`
	RecordedAt    time.Time       `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (OrderEventModel) TableName() string {
	return "order_events"
}
