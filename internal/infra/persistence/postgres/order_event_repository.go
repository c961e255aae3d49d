package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderEventRepository struct {
	db *gorm.DB
}

// NewOrderEventRepository is the constructor for orderEventRepository.
func NewOrderEventRepository(db *gorm.DB) repository.OrderEventRepository {
	return &orderEventRepository{
		db: db,
	}
}

// Record inserts the event, ignoring redeliveries of an already stored event id.
func (repo *orderEventRepository) Record(ctx context.Context, event *entity.OrderEvent) (bool, error) {
	eventM := fromOrderEventDomain(event)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(eventM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record order event")
	}

	event.RecordedAt = eventM.RecordedAt

	return result.RowsAffected > 0, nil
}

// ListByOrder returns the timeline of an order, oldest first.
func (repo *orderEventRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderEvent, error) {
	var eventModels []*model.OrderEventModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("occurred_at ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order events")
	}

	events := make([]*entity.OrderEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toOrderEventDomain(eventM))
	}

	return events, nil
}

// --- Mapper Functions ---

func toOrderEventDomain(data *model.OrderEventModel) *entity.OrderEvent {
	return &entity.OrderEvent{
		ID:            data.ID,
		OrderID:       data.OrderID,
		Type:          entity.OrderEventType(data.Type),
		Status:        entity.OrderStatus(data.Status),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		TotalAmount:   data.TotalAmount,
		ActorID:       data.ActorID,
		OccurredAt:    data.OccurredAt,
		RecordedAt:    data.RecordedAt,
	}
}

func fromOrderEventDomain(data *entity.OrderEvent) *model.OrderEventModel {
	return &model.OrderEventModel{
		ID:            data.ID,
		OrderID:       data.OrderID,
		Type:          data.Type.String(),
		Status:        data.Status.String(),
		PaymentStatus: data.PaymentStatus.String(),
		TotalAmount:   data.TotalAmount,
		ActorID:       data.ActorID,
		OccurredAt:    data.OccurredAt,
	}
}
