package telemetry

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "storefront/orders"

type orderMetrics struct {
	placed        metric.Int64Counter
	rejected      metric.Int64Counter
	statusChanged metric.Int64Counter
	deleted       metric.Int64Counter
	amount        metric.Float64Histogram
}

// NewOrderMetrics creates the order counters on the global meter provider.
// Telemetry must be constructed first so the provider is installed.
func NewOrderMetrics(_ *Telemetry) (service.OrderMetrics, error) {
	return newOrderMetrics(otel.Meter(meterName))
}

func newOrderMetrics(meter metric.Meter) (*orderMetrics, error) {
	placed, err := meter.Int64Counter("orders_placed_total",
		metric.WithDescription("Orders committed, by owner kind"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rejected, err := meter.Int64Counter("orders_rejected_total",
		metric.WithDescription("Order placements rejected by validation or stock checks"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	statusChanged, err := meter.Int64Counter("order_status_changes_total",
		metric.WithDescription("Order status transitions"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	deleted, err := meter.Int64Counter("orders_deleted_total",
		metric.WithDescription("Orders deleted with stock restored"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	amount, err := meter.Float64Histogram("order_total_amount",
		metric.WithDescription("Total amount of placed orders"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &orderMetrics{
		placed:        placed,
		rejected:      rejected,
		statusChanged: statusChanged,
		deleted:       deleted,
		amount:        amount,
	}, nil
}

func ownerKind(order *entity.Order) string {
	if order.IsGuest() {
		return "guest"
	}

	return "registered"
}

func (m *orderMetrics) OrderPlaced(ctx context.Context, order *entity.Order) {
	owner := metric.WithAttributes(attribute.String("owner", ownerKind(order)))
	m.placed.Add(ctx, 1, owner)
	m.amount.Record(ctx, order.TotalAmount.InexactFloat64(), owner)
}

func (m *orderMetrics) OrderRejected(ctx context.Context, reason string) {
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m *orderMetrics) OrderStatusChanged(ctx context.Context, from, to entity.OrderStatus) {
	m.statusChanged.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	))
}

func (m *orderMetrics) OrderDeleted(ctx context.Context, order *entity.Order) {
	m.deleted.Add(ctx, 1, metric.WithAttributes(attribute.String("status", order.Status.String())))
}
