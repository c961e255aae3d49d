package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// OrderEventUsecase maintains the order timeline fed by published order events.
type OrderEventUsecase interface {
	// RecordEvent stores an event once; redeliveries are acknowledged without a second row.
	RecordEvent(ctx context.Context, event *service.OrderEventMessage) error

	// ListOrderEvents returns the timeline of an order, oldest first.
	ListOrderEvents(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderEvent, error)
}
