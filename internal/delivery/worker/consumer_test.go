package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/pubsub"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeConsumer feeds messages to the handler and stops at the first handler error,
// mirroring the commit semantics of pubsub.Consumer.
type fakeConsumer struct {
	messages  []kafka.Message
	committed []int64
	closed    bool
}

func (f *fakeConsumer) Consume(ctx context.Context, h pubsub.MessageHandler) error {
	for _, msg := range f.messages {
		if err := h(ctx, msg); err != nil {
			return err
		}
		f.committed = append(f.committed, msg.Offset)
	}
	<-ctx.Done()

	return ctx.Err()
}

func (f *fakeConsumer) Close() error {
	f.closed = true

	return nil
}

func createTestDelivery(t *testing.T, consumer eventConsumer) (*kafkaDelivery, *mockUsecase.MockOrderEventUsecase) {
	t.Helper()

	orderEventUC := mockUsecase.NewMockOrderEventUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &kafkaDelivery{
		consumer: consumer,
		processor: handler.NewEventProcessor(handler.EventProcessorParams{
			OrderEventUC: orderEventUC,
			Logger:       logger,
		}),
		logger: logger,
	}, orderEventUC
}

func eventMessage(t *testing.T, offset int64) kafka.Message {
	t.Helper()

	data, err := json.Marshal(&service.OrderEventMessage{
		EventID:    uuid.New(),
		Type:       entity.OrderEventStatusChanged,
		OrderID:    uuid.New(),
		Status:     entity.OrderStatusShipped,
		OccurredAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	return kafka.Message{
		Offset:  offset,
		Value:   data,
		Headers: []kafka.Header{{Key: "request_id", Value: []byte("req-7")}},
	}
}

func TestKafkaDelivery_Serve(t *testing.T) {
	t.Run("records events and skips malformed ones", func(t *testing.T) {
		consumer := &fakeConsumer{messages: []kafka.Message{
			eventMessage(t, 1),
			{Offset: 2, Value: []byte("garbage")},
			eventMessage(t, 3),
		}}
		d, orderEventUC := createTestDelivery(t, consumer)
		orderEventUC.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(nil).Times(2)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- d.Serve(ctx) }()

		require.Eventually(t, func() bool {
			d.mu.Lock()
			defer d.mu.Unlock()

			return d.cancel != nil
		}, time.Second, 10*time.Millisecond)
		require.NoError(t, d.stop(context.Background()))
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Serve did not return after stop")
		}

		assert.Equal(t, []int64{1, 2, 3}, consumer.committed)
		assert.True(t, consumer.closed)
	})

	t.Run("storage failure stops without commit", func(t *testing.T) {
		consumer := &fakeConsumer{messages: []kafka.Message{eventMessage(t, 10)}}
		d, orderEventUC := createTestDelivery(t, consumer)
		orderEventUC.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(errors.New("db down"))

		err := d.Serve(context.Background())

		require.Error(t, err)
		assert.True(t, handler.IsRetryableError(err))
		assert.Empty(t, consumer.committed)
	})

	t.Run("disabled without brokers", func(t *testing.T) {
		d, _ := createTestDelivery(t, nil)

		assert.NoError(t, d.Serve(context.Background()))
	})
}
