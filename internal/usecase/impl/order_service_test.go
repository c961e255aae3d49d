package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service       usecase.OrderUsecase
	txManager     *mockRepo.MockTransactionManager
	orderRepo     *mockRepo.MockOrderRepository
	publisher     *mockSvc.MockEventPublisher
	qrService     *mockSvc.MockQRCodeService
	metrics       *mockSvc.MockOrderMetrics
	repoFactory   *mockRepo.MockRepositoryFactory
	txProductRepo *mockRepo.MockProductRepository
	txOrderRepo   *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		qrService:     mockSvc.NewMockQRCodeService(t),
		metrics:       mockSvc.NewMockOrderMetrics(t),
		repoFactory:   mockRepo.NewMockRepositoryFactory(t),
		txProductRepo: mockRepo.NewMockProductRepository(t),
		txOrderRepo:   mockRepo.NewMockOrderRepository(t),
	}

	fx.service = NewOrderService(OrderServiceParams{
		TxManager: fx.txManager,
		OrderRepo: fx.orderRepo,
		Publisher: fx.publisher,
		QRService: fx.qrService,
		Metrics:   fx.metrics,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return fx
}

// expectTransaction runs the transaction callback against the transactional repository mocks.
func (fx orderServiceFixtures) expectTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().NewProductRepository().Return(fx.txProductRepo).Maybe()
	fx.repoFactory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo).Maybe()
}

func newTestProduct(name, price string, stock int) *entity.Product {
	return &entity.Product{
		ID:         uuid.New(),
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Stock:      stock,
		IsActive:   true,
		CategoryID: uuid.New(),
	}
}

func productMap(products ...*entity.Product) map[uuid.UUID]*entity.Product {
	result := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		result[product.ID] = product
	}

	return result
}

func clientIdentity() entity.Identity {
	return entity.Identity{UserID: uuid.New(), Role: entity.RoleClient}
}

func adminIdentity() entity.Identity {
	return entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func eventOfType(eventType entity.OrderEventType) any {
	return mock.MatchedBy(func(event *service.OrderEventMessage) bool {
		return event.Type == eventType
	})
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := clientIdentity()
	mug := newTestProduct("Mug", "10.50", 5)
	lamp := newTestProduct("Lamp", "3.25", 1)
	input := &usecase.CreateOrderInput{
		Items: []usecase.OrderLineInput{
			{ProductID: mug.ID.String(), Quantity: 2},
			{ProductID: lamp.ID.String(), Quantity: 1},
		},
		ShippingAddress: "1 Main St",
		BillingAddress:  "1 Main St",
		PaymentMethod:   "CARD",
	}

	var created *entity.Order
	fx.expectTransaction()
	fx.txProductRepo.EXPECT().
		FindByIDsForUpdate(ctx, []uuid.UUID{mug.ID, lamp.ID}).
		Return(productMap(mug, lamp), nil)
	fx.txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
			created = order
		}).
		Return(nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, mug.ID, 2).Return(nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, lamp.ID, 1).Return(nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Order, error) {
			require.Equal(t, created.ID, id)

			return created, nil
		})
	fx.metrics.EXPECT().OrderPlaced(ctx, mock.AnythingOfType("*entity.Order")).Return()
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(entity.OrderEventCreated)).Return(nil)

	order, err := fx.service.CreateOrder(ctx, caller, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, caller.UserID, *order.UserID)
	assert.Nil(t, order.Guest)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "CARD", order.PaymentMethod)
	assert.True(t, decimal.RequireFromString("24.25").Equal(order.TotalAmount), "total was %s", order.TotalAmount)
	assert.True(t, order.TotalAmount.Equal(order.ItemsTotal()))
	require.Len(t, order.Items, 2)
	assert.True(t, mug.Price.Equal(order.Items[0].Price))
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, lamp.Price.Equal(order.Items[1].Price))
}

func TestOrderService_CreateOrder_ValidationErrors(t *testing.T) {
	productID := uuid.New().String()

	tests := []struct {
		name        string
		input       *usecase.CreateOrderInput
		expectedErr error
		code        string
		message     string
	}{
		{
			name:        "no items",
			input:       &usecase.CreateOrderInput{ShippingAddress: "a", BillingAddress: "b", PaymentMethod: "CARD"},
			expectedErr: domainerrors.ErrOrderItemsRequired,
			code:        "ITEMS_REQUIRED",
			message:     "items required",
		},
		{
			name: "blank billing address",
			input: &usecase.CreateOrderInput{
				Items:           []usecase.OrderLineInput{{ProductID: productID, Quantity: 1}},
				ShippingAddress: "a",
				BillingAddress:  "  ",
				PaymentMethod:   "CARD",
			},
			expectedErr: domainerrors.ErrOrderMissingFields,
			code:        "MISSING_REQUIRED_FIELDS",
			message:     "missing required fields",
		},
		{
			name: "blank product id",
			input: &usecase.CreateOrderInput{
				Items:           []usecase.OrderLineInput{{ProductID: "", Quantity: 1}},
				ShippingAddress: "a",
				BillingAddress:  "b",
				PaymentMethod:   "CARD",
			},
			expectedErr: domainerrors.ErrOrderMissingFields,
			code:        "MISSING_REQUIRED_FIELDS",
			message:     "missing required fields",
		},
		{
			name: "zero quantity",
			input: &usecase.CreateOrderInput{
				Items:           []usecase.OrderLineInput{{ProductID: productID, Quantity: 0}},
				ShippingAddress: "a",
				BillingAddress:  "b",
				PaymentMethod:   "CARD",
			},
			expectedErr: domainerrors.ErrInvalidQuantity,
			code:        "INVALID_QUANTITY",
			message:     "invalid quantity for product: " + productID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			fx.metrics.EXPECT().OrderRejected(ctx, tt.code).Return()

			order, err := fx.service.CreateOrder(ctx, clientIdentity(), tt.input)

			require.Error(t, err)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.message, err.Error())
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_CreateOrder_InactiveProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	lamp := newTestProduct("Lamp", "3.25", 10)
	lamp.IsActive = false
	input := &usecase.CreateOrderInput{
		Items:           []usecase.OrderLineInput{{ProductID: lamp.ID.String(), Quantity: 1}},
		ShippingAddress: "a",
		BillingAddress:  "b",
		PaymentMethod:   "CARD",
	}

	fx.expectTransaction()
	fx.txProductRepo.EXPECT().FindByIDsForUpdate(ctx, []uuid.UUID{lamp.ID}).Return(productMap(lamp), nil)
	fx.metrics.EXPECT().OrderRejected(ctx, "PRODUCT_NOT_AVAILABLE").Return()

	order, err := fx.service.CreateOrder(ctx, clientIdentity(), input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotAvailable)
	assert.Contains(t, err.Error(), "product is not available: Lamp")
	fx.txOrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.txProductRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	mug := newTestProduct("Mug", "10.00", 3)
	// Two lines for the same product share its stock.
	input := &usecase.CreateOrderInput{
		Items: []usecase.OrderLineInput{
			{ProductID: mug.ID.String(), Quantity: 2},
			{ProductID: mug.ID.String(), Quantity: 2},
		},
		ShippingAddress: "a",
		BillingAddress:  "b",
		PaymentMethod:   "CARD",
	}

	fx.expectTransaction()
	fx.txProductRepo.EXPECT().FindByIDsForUpdate(ctx, []uuid.UUID{mug.ID, mug.ID}).Return(productMap(mug), nil)
	fx.metrics.EXPECT().OrderRejected(ctx, "INSUFFICIENT_STOCK").Return()

	order, err := fx.service.CreateOrder(ctx, clientIdentity(), input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "insufficient stock for product: Mug")
	fx.txOrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Items:           []usecase.OrderLineInput{{ProductID: "not-a-uuid", Quantity: 1}},
		ShippingAddress: "a",
		BillingAddress:  "b",
		PaymentMethod:   "CARD",
	}

	fx.expectTransaction()
	fx.txProductRepo.EXPECT().FindByIDsForUpdate(ctx, []uuid.UUID{}).Return(map[uuid.UUID]*entity.Product{}, nil)
	fx.metrics.EXPECT().OrderRejected(ctx, "PRODUCT_NOT_FOUND").Return()

	_, err := fx.service.CreateOrder(ctx, clientIdentity(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Contains(t, err.Error(), "product not found: not-a-uuid")
}

func TestOrderService_CreateOrder_StockConflictRollsBack(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	mug := newTestProduct("Mug", "10.00", 1)
	input := &usecase.CreateOrderInput{
		Items:           []usecase.OrderLineInput{{ProductID: mug.ID.String(), Quantity: 1}},
		ShippingAddress: "a",
		BillingAddress:  "b",
		PaymentMethod:   "CARD",
	}

	fx.expectTransaction()
	fx.txProductRepo.EXPECT().FindByIDsForUpdate(ctx, []uuid.UUID{mug.ID}).Return(productMap(mug), nil)
	fx.txOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, mug.ID, 1).Return(repository.ErrStockConflict)
	fx.metrics.EXPECT().OrderRejected(ctx, "INSUFFICIENT_STOCK").Return()

	order, err := fx.service.CreateOrder(ctx, clientIdentity(), input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	fx.orderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	mug := newTestProduct("Mug", "4.00", 2)
	input := &usecase.CreateOrderInput{
		Items:           []usecase.OrderLineInput{{ProductID: mug.ID.String(), Quantity: 1}},
		ShippingAddress: "a",
		BillingAddress:  "b",
		PaymentMethod:   "CARD",
	}

	fx.expectTransaction()
	fx.txProductRepo.EXPECT().FindByIDsForUpdate(ctx, []uuid.UUID{mug.ID}).Return(productMap(mug), nil)
	fx.txOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, mug.ID, 1).Return(nil)
	fx.orderRepo.EXPECT().FindByID(ctx, mock.AnythingOfType("uuid.UUID")).Return(&entity.Order{ID: uuid.New()}, nil)
	fx.metrics.EXPECT().OrderPlaced(ctx, mock.AnythingOfType("*entity.Order")).Return()
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.CreateOrder(ctx, clientIdentity(), input)

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_CreateGuestOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	mug := newTestProduct("Mug", "12.00", 4)
	displayed := decimal.RequireFromString("9.99")
	input := &usecase.CreateGuestOrderInput{
		ProductID:    mug.ID.String(),
		ProductName:  "Mug",
		ProductPrice: &displayed,
		Quantity:     2,
		Contact: entity.GuestContact{
			CustomerName:  "Mona",
			CustomerPhone: "0100000000",
			Governorate:   "Cairo",
			Address:       "12 Nile St",
		},
	}

	var created *entity.Order
	fx.expectTransaction()
	fx.txProductRepo.EXPECT().FindByIDsForUpdate(ctx, []uuid.UUID{mug.ID}).Return(productMap(mug), nil)
	fx.txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
			created = order
		}).
		Return(nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, mug.ID, 2).Return(nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Order, error) { return created, nil })
	fx.metrics.EXPECT().OrderPlaced(ctx, mock.AnythingOfType("*entity.Order")).Return()
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEventMessage) bool {
			return event.Type == entity.OrderEventCreated && event.ActorID == nil
		})).
		Return(nil)

	order, err := fx.service.CreateGuestOrder(ctx, input)

	require.NoError(t, err)
	assert.True(t, order.IsGuest())
	require.NotNil(t, order.Guest)
	assert.Equal(t, "Mona", order.Guest.CustomerName)
	assert.Equal(t, entity.PaymentMethodCashOnDelivery, order.PaymentMethod)
	assert.Equal(t, "12 Nile St, Cairo", order.ShippingAddress)
	assert.Equal(t, "12 Nile St, Cairo", order.BillingAddress)
	// The catalog price wins over the displayed one.
	assert.True(t, decimal.RequireFromString("24.00").Equal(order.TotalAmount))
}

func TestOrderService_CreateGuestOrder_ValidationErrors(t *testing.T) {
	contact := entity.GuestContact{CustomerName: "Mona", CustomerPhone: "0100", Governorate: "Cairo", Address: "12 Nile St"}

	tests := []struct {
		name        string
		input       *usecase.CreateGuestOrderInput
		expectedErr error
		code        string
	}{
		{
			name:        "blank product id",
			input:       &usecase.CreateGuestOrderInput{Quantity: 1, Contact: contact},
			expectedErr: domainerrors.ErrOrderItemsRequired,
			code:        "ITEMS_REQUIRED",
		},
		{
			name: "missing phone",
			input: &usecase.CreateGuestOrderInput{
				ProductID: uuid.NewString(),
				Quantity:  1,
				Contact:   entity.GuestContact{CustomerName: "Mona", Governorate: "Cairo", Address: "12 Nile St"},
			},
			expectedErr: domainerrors.ErrOrderMissingFields,
			code:        "MISSING_REQUIRED_FIELDS",
		},
		{
			name:        "negative quantity",
			input:       &usecase.CreateGuestOrderInput{ProductID: uuid.NewString(), Quantity: -1, Contact: contact},
			expectedErr: domainerrors.ErrInvalidQuantity,
			code:        "INVALID_QUANTITY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			fx.metrics.EXPECT().OrderRejected(ctx, tt.code).Return()

			order, err := fx.service.CreateGuestOrder(ctx, tt.input)

			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestOrderService_UpdateOrderStatus_InputErrors(t *testing.T) {
	tests := []struct {
		name        string
		caller      entity.Identity
		input       *usecase.UpdateOrderStatusInput
		expectedErr error
		message     string
	}{
		{
			name:        "client caller",
			caller:      clientIdentity(),
			input:       &usecase.UpdateOrderStatusInput{Status: "SHIPPED"},
			expectedErr: domainerrors.ErrUnauthorized,
		},
		{
			name:        "nothing to update",
			caller:      adminIdentity(),
			input:       &usecase.UpdateOrderStatusInput{},
			expectedErr: domainerrors.ErrStatusRequired,
			message:     "status or payment status required",
		},
		{
			name:        "unknown status",
			caller:      adminIdentity(),
			input:       &usecase.UpdateOrderStatusInput{Status: "LOST"},
			expectedErr: domainerrors.ErrInvalidOrderStatus,
			message:     "invalid order status: LOST",
		},
		{
			name:        "unknown payment status",
			caller:      adminIdentity(),
			input:       &usecase.UpdateOrderStatusInput{PaymentStatus: "MAYBE"},
			expectedErr: domainerrors.ErrInvalidPaymentStatus,
			message:     "invalid payment status: MAYBE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			order, err := fx.service.UpdateOrderStatus(context.Background(), tt.caller, uuid.New(), tt.input)

			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.expectedErr)
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.expectTransaction()
	fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.UpdateOrderStatus(ctx, adminIdentity(), orderID, &usecase.UpdateOrderStatusInput{Status: "SHIPPED"})

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateOrderStatus_PaymentTransitions(t *testing.T) {
	tests := []struct {
		name            string
		paymentMethod   string
		currentPayment  entity.PaymentStatus
		input           *usecase.UpdateOrderStatusInput
		expectedStatus  entity.OrderStatus
		expectedPayment entity.PaymentStatus
	}{
		{
			name:            "cash on delivery is paid on delivery",
			paymentMethod:   entity.PaymentMethodCashOnDelivery,
			currentPayment:  entity.PaymentStatusPending,
			input:           &usecase.UpdateOrderStatusInput{Status: "DELIVERED"},
			expectedStatus:  entity.OrderStatusDelivered,
			expectedPayment: entity.PaymentStatusPaid,
		},
		{
			name:            "explicit payment status wins over auto pay",
			paymentMethod:   entity.PaymentMethodCashOnDelivery,
			currentPayment:  entity.PaymentStatusPending,
			input:           &usecase.UpdateOrderStatusInput{Status: "DELIVERED", PaymentStatus: "FAILED"},
			expectedStatus:  entity.OrderStatusDelivered,
			expectedPayment: entity.PaymentStatusFailed,
		},
		{
			name:            "card orders keep their payment status",
			paymentMethod:   "CARD",
			currentPayment:  entity.PaymentStatusPending,
			input:           &usecase.UpdateOrderStatusInput{Status: "DELIVERED"},
			expectedStatus:  entity.OrderStatusDelivered,
			expectedPayment: entity.PaymentStatusPending,
		},
		{
			name:            "refunded cash order is not paid again",
			paymentMethod:   entity.PaymentMethodCashOnDelivery,
			currentPayment:  entity.PaymentStatusRefunded,
			input:           &usecase.UpdateOrderStatusInput{Status: "DELIVERED"},
			expectedStatus:  entity.OrderStatusDelivered,
			expectedPayment: entity.PaymentStatusRefunded,
		},
		{
			name:            "payment only update keeps status",
			paymentMethod:   "CARD",
			currentPayment:  entity.PaymentStatusPending,
			input:           &usecase.UpdateOrderStatusInput{PaymentStatus: "PAID"},
			expectedStatus:  entity.OrderStatusShipped,
			expectedPayment: entity.PaymentStatusPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			current := &entity.Order{
				ID:            uuid.New(),
				Status:        entity.OrderStatusShipped,
				PaymentStatus: tt.currentPayment,
				PaymentMethod: tt.paymentMethod,
			}
			updated := &entity.Order{
				ID:            current.ID,
				Status:        tt.expectedStatus,
				PaymentStatus: tt.expectedPayment,
				PaymentMethod: tt.paymentMethod,
			}

			fx.expectTransaction()
			fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, current.ID).Return(current, nil)
			fx.txOrderRepo.EXPECT().UpdateStatus(ctx, current.ID, tt.expectedStatus, tt.expectedPayment).Return(nil)
			fx.orderRepo.EXPECT().FindByID(ctx, current.ID).Return(updated, nil)
			if tt.expectedStatus != current.Status {
				fx.metrics.EXPECT().OrderStatusChanged(ctx, current.Status, tt.expectedStatus).Return()
			}
			fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(entity.OrderEventStatusChanged)).Return(nil)

			order, err := fx.service.UpdateOrderStatus(ctx, adminIdentity(), current.ID, tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, order.Status)
			assert.Equal(t, tt.expectedPayment, order.PaymentStatus)
		})
	}
}

func TestOrderService_DeleteOrder_RestoresStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	mugID := uuid.New()
	goneID := uuid.New()
	order := &entity.Order{
		ID:          uuid.New(),
		Status:      entity.OrderStatusCancelled,
		TotalAmount: decimal.RequireFromString("30.00"),
		Items: []*entity.OrderItem{
			{ID: uuid.New(), ProductID: &mugID, Quantity: 2, Price: decimal.RequireFromString("10.00")},
			{ID: uuid.New(), ProductID: &goneID, Quantity: 1, Price: decimal.RequireFromString("5.00")},
			{ID: uuid.New(), ProductID: nil, Quantity: 1, Price: decimal.RequireFromString("5.00")},
		},
	}

	fx.expectTransaction()
	fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.txProductRepo.EXPECT().IncrementStock(ctx, mugID, 2).Return(nil)
	fx.txProductRepo.EXPECT().IncrementStock(ctx, goneID, 1).Return(repository.ErrProductNotFound)
	fx.txOrderRepo.EXPECT().Delete(ctx, order.ID).Return(nil)
	fx.metrics.EXPECT().OrderDeleted(ctx, order).Return()
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(entity.OrderEventDeleted)).Return(nil)

	err := fx.service.DeleteOrder(ctx, adminIdentity(), order.ID)

	require.NoError(t, err)
}

func TestOrderService_DeleteOrder_Guarded(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusShipped}

	fx.expectTransaction()
	fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

	err := fx.service.DeleteOrder(ctx, adminIdentity(), order.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotDeletable)
	fx.txOrderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	fx.txProductRepo.AssertNotCalled(t, "IncrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_DeleteOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.expectTransaction()
	fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	err := fx.service.DeleteOrder(ctx, adminIdentity(), orderID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_DeleteOrder_RequiresAdmin(t *testing.T) {
	fx := createTestOrderService(t)

	err := fx.service.DeleteOrder(context.Background(), clientIdentity(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestOrderService_ListOrders(t *testing.T) {
	t.Run("client sees own orders", func(t *testing.T) {
		fx := createTestOrderService(t)

		ctx := context.Background()
		caller := clientIdentity()
		orders := []*entity.Order{{ID: uuid.New(), UserID: &caller.UserID}}

		fx.orderRepo.EXPECT().
			List(ctx, repository.OrderFilter{UserID: &caller.UserID}, repository.Page{Number: 1, Limit: 10}).
			Return(orders, int64(21), nil)

		result, err := fx.service.ListOrders(ctx, caller, usecase.PageRequest{})

		require.NoError(t, err)
		assert.Equal(t, orders, result.Orders)
		assert.Equal(t, usecase.Pagination{Page: 1, Limit: 10, Total: 21, TotalPages: 3}, result.Pagination)
	})

	t.Run("admin sees every order with capped limit", func(t *testing.T) {
		fx := createTestOrderService(t)

		ctx := context.Background()

		fx.orderRepo.EXPECT().
			List(ctx, repository.OrderFilter{}, repository.Page{Number: 2, Limit: 100}).
			Return([]*entity.Order{}, int64(0), nil)

		result, err := fx.service.ListOrders(ctx, adminIdentity(), usecase.PageRequest{Page: 2, Limit: 1000})

		require.NoError(t, err)
		assert.Equal(t, 100, result.Pagination.Limit)
		assert.Equal(t, 0, result.Pagination.TotalPages)
	})
}

func TestOrderService_GetOrder_Visibility(t *testing.T) {
	owner := clientIdentity()
	order := &entity.Order{ID: uuid.New(), UserID: &owner.UserID}
	guestOrder := &entity.Order{ID: uuid.New(), Guest: &entity.GuestContact{CustomerName: "Mona"}}

	tests := []struct {
		name        string
		caller      entity.Identity
		order       *entity.Order
		expectedErr error
	}{
		{name: "owner", caller: owner, order: order},
		{name: "admin", caller: adminIdentity(), order: order},
		{name: "admin reads guest order", caller: adminIdentity(), order: guestOrder},
		{name: "other client", caller: clientIdentity(), order: order, expectedErr: domainerrors.ErrOrderNotFound},
		{name: "client reads guest order", caller: owner, order: guestOrder, expectedErr: domainerrors.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			fx.orderRepo.EXPECT().FindByID(ctx, tt.order.ID).Return(tt.order, nil)

			result, err := fx.service.GetOrder(ctx, tt.caller, tt.order.ID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.order, result)
		})
	}
}

func TestOrderService_GetOrderReceiptQR(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := clientIdentity()
	order := &entity.Order{ID: uuid.New(), UserID: &caller.UserID}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.qrService.EXPECT().GenerateOrderReceiptQR(order).Return(png, nil)

	result, err := fx.service.GetOrderReceiptQR(ctx, caller, order.ID)

	require.NoError(t, err)
	assert.Equal(t, png, result)
}

func TestOrderService_LookupOrderByReceipt(t *testing.T) {
	t.Run("valid receipt", func(t *testing.T) {
		fx := createTestOrderService(t)

		ctx := context.Background()
		order := &entity.Order{ID: uuid.New()}

		fx.qrService.EXPECT().ParseOrderReceiptQR("payload").Return(order.ID, nil)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		result, err := fx.service.LookupOrderByReceipt(ctx, "payload")

		require.NoError(t, err)
		assert.Equal(t, order, result)
	})

	t.Run("invalid receipt", func(t *testing.T) {
		fx := createTestOrderService(t)

		fx.qrService.EXPECT().ParseOrderReceiptQR("garbage").Return(uuid.Nil, errors.New("invalid QR code data"))

		result, err := fx.service.LookupOrderByReceipt(context.Background(), "garbage")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidReceipt)
	})

	t.Run("deleted order", func(t *testing.T) {
		fx := createTestOrderService(t)

		ctx := context.Background()
		orderID := uuid.New()

		fx.qrService.EXPECT().ParseOrderReceiptQR("payload").Return(orderID, nil)
		fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.LookupOrderByReceipt(ctx, "payload")

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}
