package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows an order listing. A nil UserID lists every order.
type OrderFilter struct {
	UserID *uuid.UUID
}

// OrderRepository defines persistence operations for orders and their items.
type OrderRepository interface {
	// Create inserts the order and its items. IDs and timestamps are filled in on the entity.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID loads the full order graph: items, products with images, and the user summary.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate locks the order row and loads its items. Must run inside a transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns one page of order graphs, newest first, and the total count.
	List(ctx context.Context, filter OrderFilter, page Page) ([]*entity.Order, int64, error)

	// UpdateStatus writes status and payment status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, paymentStatus entity.PaymentStatus) error

	// Delete removes the order items and then the order.
	Delete(ctx context.Context, id uuid.UUID) error
}
