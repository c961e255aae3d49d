package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderMetrics records business counters for the order workflow.
type OrderMetrics interface {
	OrderPlaced(ctx context.Context, order *entity.Order)
	OrderRejected(ctx context.Context, reason string)
	OrderStatusChanged(ctx context.Context, from, to entity.OrderStatus)
	OrderDeleted(ctx context.Context, order *entity.Order)
}
