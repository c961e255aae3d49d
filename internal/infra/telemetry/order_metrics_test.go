package telemetry

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	byName := make(map[string]metricdata.Metrics)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			byName[m.Name] = m
		}
	}

	return byName
}

func sumValue(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)

	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}

	return total
}

func TestOrderMetrics_RecordsCounters(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	metrics, err := newOrderMetrics(provider.Meter(meterName))
	require.NoError(t, err)

	ctx := context.Background()
	userID := uuid.New()
	registered := &entity.Order{UserID: &userID, TotalAmount: decimal.RequireFromString("40"), Status: entity.OrderStatusPending}
	guest := &entity.Order{TotalAmount: decimal.RequireFromString("10"), Status: entity.OrderStatusCancelled}

	metrics.OrderPlaced(ctx, registered)
	metrics.OrderPlaced(ctx, guest)
	metrics.OrderRejected(ctx, "INSUFFICIENT_STOCK")
	metrics.OrderStatusChanged(ctx, entity.OrderStatusShipped, entity.OrderStatusDelivered)
	metrics.OrderDeleted(ctx, guest)

	byName := collect(t, reader)
	assert.Equal(t, int64(2), sumValue(t, byName["orders_placed_total"]))
	assert.Equal(t, int64(1), sumValue(t, byName["orders_rejected_total"]))
	assert.Equal(t, int64(1), sumValue(t, byName["order_status_changes_total"]))
	assert.Equal(t, int64(1), sumValue(t, byName["orders_deleted_total"]))

	hist, ok := byName["order_total_amount"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)

	var count uint64
	for _, dp := range hist.DataPoints {
		count += dp.Count
	}
	assert.Equal(t, uint64(2), count)
}
