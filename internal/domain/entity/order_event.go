package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderEventType names a step in an order's lifecycle.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
	OrderEventDeleted       OrderEventType = "order.deleted"
)

// String returns the string representation of the OrderEventType.
func (t OrderEventType) String() string {
	return string(t)
}

// IsValid checks if the OrderEventType is a valid value.
func (t OrderEventType) IsValid() bool {
	switch t {
	case OrderEventCreated, OrderEventStatusChanged, OrderEventDeleted:
		return true
	default:
		return false
	}
}

// OrderEvent is one recorded entry of an order's timeline. Entries outlive the order itself.
type OrderEvent struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"orderId"`
	Type          OrderEventType  `json:"type"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	ActorID       *uuid.UUID      `json:"actorId,omitempty"`
	OccurredAt    time.Time       `json:"occurredAt"`
	RecordedAt    time.Time       `json:"recordedAt"`
}
