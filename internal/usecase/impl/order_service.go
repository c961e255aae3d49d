package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	publisher    service.EventPublisher
	qrService    service.QRCodeService
	metrics      service.OrderMetrics
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	QRService service.QRCodeService
	Metrics   service.OrderMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// orderLine is a validated request line. productID is uuid.Nil when the raw id does not parse.
type orderLine struct {
	rawID     string
	productID uuid.UUID
	quantity  int
}

// orderDetails carries the non-line fields of a new order.
type orderDetails struct {
	shippingAddress string
	billingAddress  string
	paymentMethod   string
}

// NewOrderService creates a new order service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	defaultLimit, maxLimit := pageLimits(params.Config)

	return &orderService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		publisher:    params.Publisher,
		qrService:    params.QRService,
		metrics:      params.Metrics,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places an order for an authenticated customer.
func (srv *orderService) CreateOrder(ctx context.Context, caller entity.Identity, input *usecase.CreateOrderInput) (*entity.Order, error) {
	lines, err := validateOrderInput(input)
	if err != nil {
		srv.rejected(ctx, err)

		return nil, err
	}

	details := orderDetails{
		shippingAddress: strings.TrimSpace(input.ShippingAddress),
		billingAddress:  strings.TrimSpace(input.BillingAddress),
		paymentMethod:   strings.TrimSpace(input.PaymentMethod),
	}

	order, err := srv.placeOrder(ctx, entity.RegisteredOwner(caller.UserID), lines, details)
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, entity.OrderEventCreated, order, &caller.UserID)

	return order, nil
}

// CreateGuestOrder places a cash-on-delivery order without an account.
func (srv *orderService) CreateGuestOrder(ctx context.Context, input *usecase.CreateGuestOrderInput) (*entity.Order, error) {
	line, err := validateGuestOrderInput(input)
	if err != nil {
		srv.rejected(ctx, err)

		return nil, err
	}

	contact := entity.GuestContact{
		CustomerName:  strings.TrimSpace(input.Contact.CustomerName),
		CustomerPhone: strings.TrimSpace(input.Contact.CustomerPhone),
		Governorate:   strings.TrimSpace(input.Contact.Governorate),
		Address:       strings.TrimSpace(input.Contact.Address),
		Note:          strings.TrimSpace(input.Contact.Note),
	}
	address := contact.DeliveryAddress()
	details := orderDetails{
		shippingAddress: address,
		billingAddress:  address,
		paymentMethod:   entity.PaymentMethodCashOnDelivery,
	}

	order, err := srv.placeOrder(ctx, entity.GuestOwner(contact), []orderLine{line}, details)
	if err != nil {
		return nil, err
	}

	srv.warnOnDisplayedPriceMismatch(ctx, input, order)
	srv.publish(ctx, entity.OrderEventCreated, order, nil)

	return order, nil
}

// placeOrder runs the checkout transaction shared by both owner variants: lock the requested
// products in id order, check every line against the locked rows, then write the order,
// its items and the stock decrements.
func (srv *orderService) placeOrder(ctx context.Context, owner entity.OrderOwner, lines []orderLine, details orderDetails) (*entity.Order, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		if line.productID != uuid.Nil {
			ids = append(ids, line.productID)
		}
	}

	var orderID uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()

		products, err := productRepo.FindByIDsForUpdate(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to lock products")
		}

		items, total, err := priceOrderLines(lines, products)
		if err != nil {
			return err
		}

		order := &entity.Order{
			UserID:          owner.UserID,
			Guest:           owner.Guest,
			TotalAmount:     total,
			Status:          entity.OrderStatusPending,
			PaymentStatus:   entity.PaymentStatusPending,
			PaymentMethod:   details.paymentMethod,
			ShippingAddress: details.shippingAddress,
			BillingAddress:  details.billingAddress,
			Items:           items,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, item := range items {
			err := productRepo.DecrementStock(ctx, *item.ProductID, item.Quantity)
			if errors.Is(err, repository.ErrStockConflict) {
				return domainerrors.ErrInsufficientStock.WithMessagef("insufficient stock for product: %s", products[*item.ProductID].Name)
			}
			if err != nil {
				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		orderID = order.ID

		return nil
	})
	if err != nil {
		srv.rejected(ctx, err)
		srv.log(ctx).Warn("Order rejected", slog.Bool("guest", owner.IsGuest()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to place order")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load placed order")
	}

	srv.metrics.OrderPlaced(ctx, order)
	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID.String()),
		slog.Bool("guest", order.IsGuest()),
		slog.String("total", order.TotalAmount.StringFixed(2)),
	)

	return order, nil
}

// priceOrderLines checks the lines in request order against the locked products and snapshots
// their prices. Repeated lines for one product share its stock through the reserved map.
func priceOrderLines(lines []orderLine, products map[uuid.UUID]*entity.Product) ([]*entity.OrderItem, decimal.Decimal, error) {
	reserved := make(map[uuid.UUID]int, len(products))
	items := make([]*entity.OrderItem, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		product, ok := products[line.productID]
		if !ok {
			return nil, decimal.Zero, domainerrors.ErrProductNotFound.WithMessagef("product not found: %s", line.rawID)
		}
		if !product.IsOrderable() {
			return nil, decimal.Zero, domainerrors.ErrProductNotAvailable.WithMessagef("product is not available: %s", product.Name)
		}
		if product.Stock-reserved[product.ID] < line.quantity {
			return nil, decimal.Zero, domainerrors.ErrInsufficientStock.WithMessagef("insufficient stock for product: %s", product.Name)
		}

		reserved[product.ID] += line.quantity
		productID := product.ID
		item := &entity.OrderItem{
			ProductID: &productID,
			Quantity:  line.quantity,
			Price:     product.Price,
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	return items, total, nil
}

// UpdateOrderStatus sets the fulfilment and/or payment status of an order.
func (srv *orderService) UpdateOrderStatus(
	ctx context.Context,
	caller entity.Identity,
	orderID uuid.UUID,
	input *usecase.UpdateOrderStatusInput,
) (*entity.Order, error) {
	if !caller.IsAdmin() {
		return nil, domainerrors.ErrUnauthorized
	}

	statusValue := strings.TrimSpace(input.Status)
	paymentValue := strings.TrimSpace(input.PaymentStatus)
	if statusValue == "" && paymentValue == "" {
		return nil, domainerrors.ErrStatusRequired
	}

	status := entity.OrderStatus(statusValue)
	if statusValue != "" && !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithMessagef("invalid order status: %s", statusValue)
	}
	paymentStatus := entity.PaymentStatus(paymentValue)
	if paymentValue != "" && !paymentStatus.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentStatus.WithMessagef("invalid payment status: %s", paymentValue)
	}

	var previous entity.OrderStatus
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock order")
		}

		previous = order.Status
		nextStatus := order.Status
		if statusValue != "" {
			nextStatus = status
		}
		nextPayment := order.PaymentStatus
		switch {
		case paymentValue != "":
			nextPayment = paymentStatus
		case statusValue != "" && order.CollectsPaymentOnDelivery(nextStatus):
			nextPayment = entity.PaymentStatusPaid
		}

		return orderRepo.UpdateStatus(ctx, orderID, nextStatus, nextPayment)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load updated order")
	}

	if previous != order.Status {
		srv.metrics.OrderStatusChanged(ctx, previous, order.Status)
	}
	srv.log(ctx).Info("Order status updated",
		slog.String("orderID", orderID.String()),
		slog.String("from", previous.String()),
		slog.String("status", order.Status.String()),
		slog.String("paymentStatus", order.PaymentStatus.String()),
	)
	srv.publish(ctx, entity.OrderEventStatusChanged, order, &caller.UserID)

	return order, nil
}

// DeleteOrder removes a pending or cancelled order and hands its stock back.
func (srv *orderService) DeleteOrder(ctx context.Context, caller entity.Identity, orderID uuid.UUID) error {
	if !caller.IsAdmin() {
		return domainerrors.ErrUnauthorized
	}

	var deleted *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		productRepo := repoFactory.NewProductRepository()

		order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock order")
		}

		if !order.IsDeletable() {
			return domainerrors.ErrOrderNotDeletable
		}

		for _, item := range order.Items {
			if item.ProductID == nil {
				srv.log(ctx).Warn("Skipping stock restore for deleted product", slog.String("orderItemID", item.ID.String()))

				continue
			}

			err := productRepo.IncrementStock(ctx, *item.ProductID, item.Quantity)
			if errors.Is(err, repository.ErrProductNotFound) {
				srv.log(ctx).Warn("Skipping stock restore for missing product", slog.String("productID", item.ProductID.String()))

				continue
			}
			if err != nil {
				return errors.Wrap(err, "failed to restore stock")
			}
		}

		if err := orderRepo.Delete(ctx, orderID); err != nil {
			return errors.Wrap(err, "failed to delete order")
		}

		deleted = order

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	srv.metrics.OrderDeleted(ctx, deleted)
	srv.log(ctx).Info("Order deleted", slog.String("orderID", orderID.String()), slog.Int("items", len(deleted.Items)))
	srv.publish(ctx, entity.OrderEventDeleted, deleted, &caller.UserID)

	return nil
}

// ListOrders returns one page of orders visible to the caller.
func (srv *orderService) ListOrders(ctx context.Context, caller entity.Identity, page usecase.PageRequest) (*usecase.OrderList, error) {
	number, limit := util.NormalizePage(page.Page, page.Limit, srv.defaultLimit, srv.maxLimit)

	filter := repository.OrderFilter{}
	if !caller.IsAdmin() {
		userID := caller.UserID
		filter.UserID = &userID
	}

	orders, total, err := srv.orderRepo.List(ctx, filter, repository.Page{Number: number, Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderList{
		Orders: orders,
		Pagination: usecase.Pagination{
			Page:       number,
			Limit:      limit,
			Total:      total,
			TotalPages: util.TotalPages(total, limit),
		},
	}, nil
}

// GetOrder returns the order when the caller may see it. Orders of other customers are
// reported as missing.
func (srv *orderService) GetOrder(ctx context.Context, caller entity.Identity, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.IsVisibleTo(caller) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// GetOrderReceiptQR renders the receipt QR code of an order.
func (srv *orderService) GetOrderReceiptQR(ctx context.Context, caller entity.Identity, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderReceiptQR(order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt QR code")
	}

	return png, nil
}

// LookupOrderByReceipt resolves scanned receipt content to its order.
func (srv *orderService) LookupOrderByReceipt(ctx context.Context, qrData string) (*entity.Order, error) {
	orderID, err := srv.qrService.ParseOrderReceiptQR(qrData)
	if err != nil {
		srv.log(ctx).Debug("Rejected receipt code", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidReceipt
	}

	return srv.findOrder(ctx, orderID)
}

func (srv *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// publish sends the lifecycle event after commit. Failures are logged only: the order change
// is already durable.
func (srv *orderService) publish(ctx context.Context, eventType entity.OrderEventType, order *entity.Order, actorID *uuid.UUID) {
	event := service.NewOrderEventMessage(eventType, order, actorID)
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("type", eventType.String()),
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}
}

// rejected counts business rejections by error code; infrastructure failures are not counted.
func (srv *orderService) rejected(ctx context.Context, err error) {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok || appErr.HTTPCode() >= 500 {
		return
	}

	srv.metrics.OrderRejected(ctx, appErr.ErrorCode())
}

func (srv *orderService) warnOnDisplayedPriceMismatch(ctx context.Context, input *usecase.CreateGuestOrderInput, order *entity.Order) {
	if input.ProductPrice == nil || len(order.Items) == 0 {
		return
	}

	if charged := order.Items[0].Price; !charged.Equal(*input.ProductPrice) {
		srv.log(ctx).Warn("Guest order displayed price differs from catalog price",
			slog.String("orderID", order.ID.String()),
			slog.String("productName", input.ProductName),
			slog.String("displayed", input.ProductPrice.String()),
			slog.String("charged", charged.String()),
		)
	}
}

// validateOrderInput applies the checkout checks that need no store access. The first
// violation wins.
func validateOrderInput(input *usecase.CreateOrderInput) ([]orderLine, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrOrderItemsRequired
	}

	if isBlank(input.ShippingAddress) || isBlank(input.BillingAddress) || isBlank(input.PaymentMethod) {
		return nil, domainerrors.ErrOrderMissingFields
	}

	lines := make([]orderLine, 0, len(input.Items))
	for _, item := range input.Items {
		if isBlank(item.ProductID) {
			return nil, domainerrors.ErrOrderMissingFields
		}

		line, err := newOrderLine(item.ProductID, item.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func validateGuestOrderInput(input *usecase.CreateGuestOrderInput) (orderLine, error) {
	if isBlank(input.ProductID) {
		return orderLine{}, domainerrors.ErrOrderItemsRequired
	}

	contact := input.Contact
	if isBlank(contact.CustomerName) || isBlank(contact.CustomerPhone) || isBlank(contact.Governorate) || isBlank(contact.Address) {
		return orderLine{}, domainerrors.ErrOrderMissingFields
	}

	return newOrderLine(input.ProductID, input.Quantity)
}

func newOrderLine(rawID string, quantity int) (orderLine, error) {
	rawID = strings.TrimSpace(rawID)
	if quantity < 1 {
		return orderLine{}, domainerrors.ErrInvalidQuantity.WithMessagef("invalid quantity for product: %s", rawID)
	}

	line := orderLine{rawID: rawID, quantity: quantity}
	if id, err := uuid.Parse(rawID); err == nil {
		line.productID = id
	}

	return line, nil
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// pageLimits reads the listing defaults, falling back to the built-in values.
func pageLimits(cfg *config.Config) (int, int) {
	defaultLimit, maxLimit := 0, 0
	if cfg != nil && cfg.Pagination != nil {
		defaultLimit = cfg.Pagination.DefaultLimit
		maxLimit = cfg.Pagination.MaxLimit
	}

	return util.DefaultPageLimits(defaultLimit, maxLimit)
}
