package handler

import (
	"log/slog"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public catalog and its administration.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CategoryRequest represents the request body for creating or updating a category
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// ProductImageRequest is one gallery entry; the list order becomes the display order.
type ProductImageRequest struct {
	URL string `json:"url" validate:"required,url"`
	Alt string `json:"alt" validate:"max=255"`
}

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	Name        string                `json:"name" validate:"required,max=200"`
	Description string                `json:"description"`
	Price       decimal.Decimal       `json:"price"`
	Stock       int                   `json:"stock" validate:"min=0"`
	IsActive    *bool                 `json:"isActive"`
	CategoryID  string                `json:"categoryId" validate:"required,uuid"`
	Images      []ProductImageRequest `json:"images" validate:"dive"`
}

// ProductListQuery holds the catalog query parameters.
type ProductListQuery struct {
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	CategoryID string `query:"categoryId"`
}

// ListCategories returns every category.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{"categories": categories})
}

// CreateCategory handles category creation.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, category)
}

// UpdateCategory handles category renames and description changes.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	categoryID, ok := parseIDParam(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrCategoryNotFound)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), categoryID, &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, category)
}

// DeleteCategory removes an empty category.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	categoryID, ok := parseIDParam(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrCategoryNotFound)
	}

	if err := h.catalogUC.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Category deleted successfully"})
}

// ListProducts returns one page of active products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	return h.listProducts(c, false)
}

// ListAllProducts returns one page of products including inactive ones.
func (h *CatalogHandler) ListAllProducts(c echo.Context) error {
	return h.listProducts(c, true)
}

func (h *CatalogHandler) listProducts(c echo.Context, includeInactive bool) error {
	var query ProductListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "page and limit must be integers")
	}

	productQuery := &usecase.ProductQuery{
		IncludeInactive: includeInactive,
		Page:            usecase.PageRequest{Page: query.Page, Limit: query.Limit},
	}
	if query.CategoryID != "" {
		categoryID, err := uuid.Parse(query.CategoryID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
		}
		productQuery.CategoryID = &categoryID
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), productQuery)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// GetProduct returns an active product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, ok := parseIDParam(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrProductNotFound)
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID, false)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// CreateProduct handles product creation.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	input, err := bindProduct(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// UpdateProduct replaces the editable fields and the gallery of a product.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	productID, ok := parseIDParam(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrProductNotFound)
	}

	input, err := bindProduct(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), productID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// DeleteProduct removes a product from the catalog.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	productID, ok := parseIDParam(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrProductNotFound)
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Product deleted successfully"})
}

// bindProduct binds and validates a product body.
func bindProduct(c echo.Context) (*usecase.ProductInput, error) {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid category ID")
	}

	images := make([]entity.ProductImage, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, entity.ProductImage{URL: img.URL, Alt: img.Alt})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		IsActive:    isActive,
		CategoryID:  categoryID,
		Images:      images,
	}, nil
}
