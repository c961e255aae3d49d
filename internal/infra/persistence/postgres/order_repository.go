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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// withOrderGraph preloads everything an order response carries.
func withOrderGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no ASC")
		}).
		Preload("Items.Product").
		Preload("Items.Product.Images", preloadImages)
}

// Create inserts the order row and then its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	db := repo.db.WithContext(ctx)
	orderM := fromOrderDomain(order)

	if err := db.Omit(clause.Associations).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	itemModels := make([]*model.OrderItemModel, 0, len(order.Items))
	for i, item := range order.Items {
		itemModels = append(itemModels, &model.OrderItemModel{
			OrderID:   orderM.ID,
			ProductID: item.ProductID,
			LineNo:    i,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if len(itemModels) > 0 {
		if err := db.Omit(clause.Associations).Create(&itemModels).Error; err != nil {
			if isCheckConstraintViolation(err) {
				return domainerrors.ErrInvalidQuantity
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
		}
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range itemModels {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindByID loads the order with items, products, images and user.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Scopes(withOrderGraph).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUpdate locks the order row and loads its items without products.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	db := repo.db.WithContext(ctx)

	var orderM model.OrderModel
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	if err := db.Where("order_id = ?", id).
		Order("line_no ASC").
		Find(&orderM.Items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	return toOrderDomain(&orderM), nil
}

// List returns one page of orders, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter, page repository.Page) ([]*entity.Order, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.UserID != nil {
			db = db.Where("user_id = ?", *filter.UserID)
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Scopes(scope, withOrderGraph).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, paymentStatus entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         status.String(),
			"payment_status": paymentStatus.String(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes the items and then the order.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("order_id = ?", id).
		Delete(&model.OrderItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete order items")
	}

	result := db.Where("id = ?", id).Delete(&model.OrderModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		TotalAmount:     data.TotalAmount,
		Status:          entity.OrderStatus(data.Status),
		PaymentStatus:   entity.PaymentStatus(data.PaymentStatus),
		PaymentMethod:   data.PaymentMethod,
		ShippingAddress: data.ShippingAddress,
		BillingAddress:  data.BillingAddress,
		Items:           make([]*entity.OrderItem, 0, len(data.Items)),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if data.User != nil {
		order.User = toUserDomain(data.User).Summary()
	}

	if data.UserID == nil {
		order.Guest = &entity.GuestContact{
			CustomerName:  deref(data.CustomerName),
			CustomerPhone: deref(data.CustomerPhone),
			Governorate:   deref(data.Governorate),
			Address:       deref(data.GuestAddress),
			Note:          deref(data.Note),
		}
	}

	for _, itemM := range data.Items {
		item := &entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
			Price:     itemM.Price,
		}
		if itemM.Product != nil {
			item.Product = toProductDomain(itemM.Product)
		}
		order.Items = append(order.Items, item)
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		TotalAmount:     data.TotalAmount,
		Status:          data.Status.String(),
		PaymentStatus:   data.PaymentStatus.String(),
		PaymentMethod:   data.PaymentMethod,
		ShippingAddress: data.ShippingAddress,
		BillingAddress:  data.BillingAddress,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if guest := data.Guest; guest != nil {
		orderM.CustomerName = &guest.CustomerName
		orderM.CustomerPhone = &guest.CustomerPhone
		orderM.Governorate = &guest.Governorate
		orderM.GuestAddress = &guest.Address
		if guest.Note != "" {
			orderM.Note = &guest.Note
		}
	}

	return orderM
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
