package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ErrMalformedEvent marks a message that can never be recorded. Transports drop it.
var ErrMalformedEvent = errors.New("malformed order event")

// retryableError wraps an error to indicate the message should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// EventProcessor decodes order event payloads and appends them to the order timeline.
// It is shared by the Pub/Sub push endpoint and the Kafka consumer.
type EventProcessor struct {
	orderEventUC usecase.OrderEventUsecase
	logger       *slog.Logger
}

// EventProcessorParams holds dependencies for the EventProcessor
type EventProcessorParams struct {
	fx.In

	OrderEventUC usecase.OrderEventUsecase
	Logger       *slog.Logger
}

// NewEventProcessor creates a new order event processor
func NewEventProcessor(params EventProcessorParams) *EventProcessor {
	return &EventProcessor{
		orderEventUC: params.OrderEventUC,
		logger:       params.Logger,
	}
}

// Process records one JSON encoded order event. The returned error wraps ErrMalformedEvent
// for payloads that cannot be recorded and is retryable for storage failures.
// requestID is the transport-level correlation id and may be empty.
func (p *EventProcessor) Process(ctx context.Context, data []byte, requestID string) error {
	var event service.OrderEventMessage
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.Wrap(ErrMalformedEvent, err.Error())
	}

	requestID = resolveRequestID(ctx, requestID, &event)
	reqLogger := p.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("eventID", event.EventID.String()),
		slog.String("orderID", event.OrderID.String()),
		slog.String("type", event.Type.String()),
	)

	err := p.orderEventUC.RecordEvent(ctx, &event)
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return errors.Wrap(ErrMalformedEvent, err.Error())
	}

	return newRetryableError(errors.WithStack(err))
}

// resolveRequestID picks the correlation id.
// Priority: transport attribute > event field > existing context > new UUID.
func resolveRequestID(ctx context.Context, attribute string, event *service.OrderEventMessage) string {
	if attribute != "" {
		return attribute
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
