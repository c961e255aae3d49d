package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type orderEventService struct {
	eventRepo repository.OrderEventRepository
	logger    *slog.Logger
}

// NewOrderEventService creates the order timeline service.
func NewOrderEventService(eventRepo repository.OrderEventRepository, logger *slog.Logger) usecase.OrderEventUsecase {
	return &orderEventService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// RecordEvent stores one timeline entry. Malformed events are rejected so the transport
// can acknowledge them without retrying.
func (srv *orderEventService) RecordEvent(ctx context.Context, event *service.OrderEventMessage) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if event.EventID == uuid.Nil || event.OrderID == uuid.Nil || !event.Type.IsValid() {
		logger.Warn("Rejected malformed order event",
			slog.String("eventID", event.EventID.String()),
			slog.String("type", event.Type.String()),
		)

		return domainerrors.ErrValidationFailed.WithDetails("event id, order id and a known type are required")
	}

	inserted, err := srv.eventRepo.Record(ctx, event.ToEntity())
	if err != nil {
		return errors.Wrap(err, "failed to record order event")
	}

	if !inserted {
		logger.Info("Duplicate order event ignored", slog.String("eventID", event.EventID.String()))

		return nil
	}

	logger.Info("Order event recorded",
		slog.String("eventID", event.EventID.String()),
		slog.String("orderID", event.OrderID.String()),
		slog.String("type", event.Type.String()),
	)

	return nil
}

func (srv *orderEventService) ListOrderEvents(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderEvent, error) {
	events, err := srv.eventRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order events")
	}

	return events, nil
}
