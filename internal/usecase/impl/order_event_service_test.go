package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrderEvent() *service.OrderEventMessage {
	order := &entity.Order{
		ID:            uuid.New(),
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		TotalAmount:   decimal.RequireFromString("19.90"),
	}

	return service.NewOrderEventMessage(entity.OrderEventCreated, order, nil)
}

func TestOrderEventService_RecordEvent(t *testing.T) {
	tests := []struct {
		name      string
		inserted  bool
		repoErr   error
		expectErr bool
	}{
		{name: "new event", inserted: true},
		{name: "redelivered event", inserted: false},
		{name: "storage failure", repoErr: errors.New("connection refused"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventRepo := mockRepo.NewMockOrderEventRepository(t)
			service := NewOrderEventService(eventRepo, newDiscardLogger())

			ctx := context.Background()
			event := newTestOrderEvent()
			eventRepo.EXPECT().
				Record(ctx, mock.MatchedBy(func(recorded *entity.OrderEvent) bool {
					return recorded.ID == event.EventID && recorded.OrderID == event.OrderID && recorded.Type == entity.OrderEventCreated
				})).
				Return(tt.inserted, tt.repoErr)

			err := service.RecordEvent(ctx, event)

			if tt.expectErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOrderEventService_RecordEvent_Malformed(t *testing.T) {
	eventRepo := mockRepo.NewMockOrderEventRepository(t)
	service := NewOrderEventService(eventRepo, newDiscardLogger())

	event := newTestOrderEvent()
	event.Type = "order.exploded"

	err := service.RecordEvent(context.Background(), event)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	eventRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestOrderEventService_ListOrderEvents(t *testing.T) {
	eventRepo := mockRepo.NewMockOrderEventRepository(t)
	service := NewOrderEventService(eventRepo, newDiscardLogger())

	ctx := context.Background()
	orderID := uuid.New()
	events := []*entity.OrderEvent{{ID: uuid.New(), OrderID: orderID, Type: entity.OrderEventCreated}}
	eventRepo.EXPECT().ListByOrder(ctx, orderID).Return(events, nil)

	result, err := service.ListOrderEvents(ctx, orderID)

	require.NoError(t, err)
	assert.Equal(t, events, result)
}
