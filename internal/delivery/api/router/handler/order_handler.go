package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC      usecase.OrderUsecase
	OrderEventUC usecase.OrderEventUsecase
	Logger       *slog.Logger
}

// OrderHandler serves checkout and order administration.
type OrderHandler struct {
	orderUC      usecase.OrderUsecase
	orderEventUC usecase.OrderEventUsecase
	logger       *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:      params.OrderUC,
		orderEventUC: params.OrderEventUC,
		logger:       params.Logger,
	}
}

// OrderLineRequest is one cart line.
type OrderLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the checkout body of an authenticated customer. Field checks run in the
// order workflow so that the first violation is reported.
type CreateOrderRequest struct {
	Items           []OrderLineRequest `json:"items"`
	ShippingAddress string             `json:"shippingAddress"`
	BillingAddress  string             `json:"billingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
}

// CreateGuestOrderRequest is the single-product checkout body of an anonymous visitor.
type CreateGuestOrderRequest struct {
	ProductID     string           `json:"productId"`
	ProductName   string           `json:"productName"`
	ProductPrice  *decimal.Decimal `json:"productPrice"`
	Quantity      int              `json:"quantity"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	Governorate   string           `json:"governorate"`
	Address       string           `json:"address"`
	Note          string           `json:"note"`
}

// UpdateOrderStatusRequest carries an optional status and an optional payment status.
type UpdateOrderStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

// ReceiptLookupRequest holds the scanned receipt QR content.
type ReceiptLookupRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// ListQuery holds the pagination query parameters.
type ListQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// CreateOrder handles checkout for the authenticated caller.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "authentication required")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	items := make([]usecase.OrderLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderLineInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), identity, &usecase.CreateOrderInput{
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, order)
}

// CreateGuestOrder handles cash-on-delivery checkout without an account.
func (h *OrderHandler) CreateGuestOrder(c echo.Context) error {
	var req CreateGuestOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.orderUC.CreateGuestOrder(c.Request().Context(), &usecase.CreateGuestOrderInput{
		ProductID:    req.ProductID,
		ProductName:  req.ProductName,
		ProductPrice: req.ProductPrice,
		Quantity:     req.Quantity,
		Contact: entity.GuestContact{
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Governorate:   req.Governorate,
			Address:       req.Address,
			Note:          req.Note,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, order)
}

// ListOrders returns the caller's orders, or all orders for administrators.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "authentication required")
	}

	var query ListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "page and limit must be integers")
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), identity, usecase.PageRequest{Page: query.Page, Limit: query.Limit})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

// GetOrder returns one order if the caller may see it.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "authentication required")
	}

	orderID, ok := parseIDParam(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), identity, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// UpdateOrderStatus handles the administrator status and payment transitions.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "authentication required")
	}

	orderID, ok := parseIDParam(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), identity, orderID, &usecase.UpdateOrderStatusInput{
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// DeleteOrder removes a pending or cancelled order and restores its stock.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "authentication required")
	}

	orderID, ok := parseIDParam(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), identity, orderID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Order deleted successfully"})
}

// GetReceiptQR renders the receipt QR code as PNG.
func (h *OrderHandler) GetReceiptQR(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "authentication required")
	}

	orderID, ok := parseIDParam(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	png, err := h.orderUC.GetOrderReceiptQR(c.Request().Context(), identity, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// LookupReceipt resolves a scanned receipt to its order.
func (h *OrderHandler) LookupReceipt(c echo.Context) error {
	var req ReceiptLookupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid receipt input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.LookupOrderByReceipt(c.Request().Context(), req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// ListOrderEvents returns the recorded timeline of an order.
func (h *OrderHandler) ListOrderEvents(c echo.Context) error {
	orderID, ok := parseIDParam(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	events, err := h.orderEventUC.ListOrderEvents(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{"events": events})
}
