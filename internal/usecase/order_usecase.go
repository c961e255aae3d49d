package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineInput is one requested line of a new order. ProductID is kept as sent by the
// client; an unparseable id is reported as a missing product.
type OrderLineInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput is the checkout request of an authenticated customer.
type CreateOrderInput struct {
	Items           []OrderLineInput
	ShippingAddress string
	BillingAddress  string
	PaymentMethod   string
}

// CreateGuestOrderInput is the single-product checkout request of an anonymous visitor.
// ProductName and ProductPrice are what the storefront displayed and are informational only.
type CreateGuestOrderInput struct {
	ProductID    string
	ProductName  string
	ProductPrice *decimal.Decimal
	Quantity     int
	Contact      entity.GuestContact
}

// UpdateOrderStatusInput carries the requested transition. Empty fields are left unchanged.
type UpdateOrderStatusInput struct {
	Status        string
	PaymentStatus string
}

// OrderList is one page of orders.
type OrderList struct {
	Orders     []*entity.Order `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}

// OrderUsecase defines the order workflow
type OrderUsecase interface {
	// CreateOrder validates the lines against the catalog, snapshots prices, decrements stock and
	// persists the order in one transaction.
	CreateOrder(ctx context.Context, caller entity.Identity, input *CreateOrderInput) (*entity.Order, error)

	// CreateGuestOrder places a cash-on-delivery order without an account.
	CreateGuestOrder(ctx context.Context, input *CreateGuestOrderInput) (*entity.Order, error)

	// UpdateOrderStatus sets status and/or payment status (administrators only).
	UpdateOrderStatus(ctx context.Context, caller entity.Identity, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)

	// DeleteOrder removes a pending or cancelled order and restores its stock (administrators only).
	DeleteOrder(ctx context.Context, caller entity.Identity, orderID uuid.UUID) error

	// ListOrders returns the caller's orders, or every order for administrators, newest first.
	ListOrders(ctx context.Context, caller entity.Identity, page PageRequest) (*OrderList, error)

	// GetOrder returns an order visible to the caller.
	GetOrder(ctx context.Context, caller entity.Identity, orderID uuid.UUID) (*entity.Order, error)

	// GetOrderReceiptQR renders the receipt QR code of an order visible to the caller.
	GetOrderReceiptQR(ctx context.Context, caller entity.Identity, orderID uuid.UUID) ([]byte, error)

	// LookupOrderByReceipt resolves scanned receipt content to its order.
	LookupOrderByReceipt(ctx context.Context, qrData string) (*entity.Order, error)
}
