package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderEventRepository stores the append-only order timeline.
type OrderEventRepository interface {
	// Record inserts the event. It reports false when an event with the same id was already stored.
	Record(ctx context.Context, event *entity.OrderEvent) (bool, error)

	// ListByOrder returns the timeline of an order, oldest first.
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderEvent, error)
}
