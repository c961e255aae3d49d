package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
// PENDING -> PROCESSING -> SHIPPED -> DELIVERED, with CANCELLED reachable from any state.
// Transitions are not enforced: an administrator may set any status at any time.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentStatus records the payment state. No payment is processed by the service.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// PaymentMethodCashOnDelivery is the payment label for orders paid to the courier.
const PaymentMethodCashOnDelivery = "CASH_ON_DELIVERY"

// Order is a placed purchase together with its line items.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	UserID          *uuid.UUID      `json:"userId"`
	User            *UserSummary    `json:"user,omitempty"`
	Guest           *GuestContact   `json:"guest,omitempty"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          OrderStatus     `json:"status"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	PaymentMethod   string          `json:"paymentMethod"`
	ShippingAddress string          `json:"shippingAddress"`
	BillingAddress  string          `json:"billingAddress"`
	Items           []*OrderItem    `json:"items"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// IsGuest reports whether the order was placed without an account.
func (o *Order) IsGuest() bool {
	return o.UserID == nil
}

// IsOwnedBy reports whether the order belongs to the given user.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.UserID != nil && *o.UserID == userID
}

// IsVisibleTo reports whether the caller may read the order.
func (o *Order) IsVisibleTo(identity Identity) bool {
	return identity.IsAdmin() || o.IsOwnedBy(identity.UserID)
}

// IsDeletable reports whether the order may be removed. Only orders whose fulfilment
// has not progressed can be deleted, since deletion hands the stock back.
func (o *Order) IsDeletable() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusCancelled
}

// CollectsPaymentOnDelivery reports whether moving the order to newStatus settles a cash-on-delivery payment.
func (o *Order) CollectsPaymentOnDelivery(newStatus OrderStatus) bool {
	return newStatus == OrderStatusDelivered &&
		o.PaymentMethod == PaymentMethodCashOnDelivery &&
		o.PaymentStatus == PaymentStatusPending
}

// ItemsTotal sums price*quantity over the order's items.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// OrderItem is one line of an order. Price is the product price captured when the order
// was placed and is never recomputed.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"orderId"`
	ProductID *uuid.UUID      `json:"productId"` // nil once the product has been deleted
	Product   *Product        `json:"product,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Subtotal returns price*quantity.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// GuestContact holds the contact record of an order placed without an account.
type GuestContact struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Governorate   string `json:"governorate"`
	Address       string `json:"address"`
	Note          string `json:"note,omitempty"`
}

// DeliveryAddress formats the contact's street address and governorate as a single line.
func (g *GuestContact) DeliveryAddress() string {
	parts := make([]string, 0, 2)
	for _, part := range []string{g.Address, g.Governorate} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, ", ")
}

// OrderOwner identifies who places an order: a registered user or an anonymous contact.
// Exactly one of UserID and Guest is set.
type OrderOwner struct {
	UserID *uuid.UUID
	Guest  *GuestContact
}

// RegisteredOwner builds the owner variant for an authenticated customer.
func RegisteredOwner(userID uuid.UUID) OrderOwner {
	return OrderOwner{UserID: &userID}
}

// GuestOwner builds the owner variant for guest checkout.
func GuestOwner(contact GuestContact) OrderOwner {
	return OrderOwner{Guest: &contact}
}

// IsGuest reports whether the owner is an anonymous contact.
func (o OrderOwner) IsGuest() bool {
	return o.UserID == nil
}
