package service

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderEventMessage is the payload published for every order lifecycle change
// and consumed by the order timeline worker.
type OrderEventMessage struct {
	RequestID     string                `json:"request_id,omitempty"` // For distributed tracing
	EventID       uuid.UUID             `json:"event_id"`
	Type          entity.OrderEventType `json:"type"`
	OrderID       uuid.UUID             `json:"order_id"`
	Status        entity.OrderStatus    `json:"status"`
	PaymentStatus entity.PaymentStatus  `json:"payment_status"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	ActorID       *uuid.UUID            `json:"actor_id,omitempty"`
	OccurredAt    time.Time             `json:"occurred_at"`
}

// NewOrderEventMessage snapshots an order for the given event type.
func NewOrderEventMessage(eventType entity.OrderEventType, order *entity.Order, actorID *uuid.UUID) *OrderEventMessage {
	return &OrderEventMessage{
		EventID:       uuid.New(),
		Type:          eventType,
		OrderID:       order.ID,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		TotalAmount:   order.TotalAmount,
		ActorID:       actorID,
		OccurredAt:    time.Now().UTC(),
	}
}

// ToEntity converts the message into a timeline entry.
func (m *OrderEventMessage) ToEntity() *entity.OrderEvent {
	return &entity.OrderEvent{
		ID:            m.EventID,
		OrderID:       m.OrderID,
		Type:          m.Type,
		Status:        m.Status,
		PaymentStatus: m.PaymentStatus,
		TotalAmount:   m.TotalAmount,
		ActorID:       m.ActorID,
		OccurredAt:    m.OccurredAt,
	}
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
