package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogHandler(t *testing.T) (*CatalogHandler, *mockUsecase.MockCatalogUsecase) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)

	return NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()}), catalogUC
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	t.Run("public listing hides inactive products", func(t *testing.T) {
		h, catalogUC := createTestCatalogHandler(t)
		categoryID := uuid.New()

		catalogUC.EXPECT().
			ListProducts(mock.Anything, &usecase.ProductQuery{
				CategoryID: &categoryID,
				Page:       usecase.PageRequest{Page: 1, Limit: 20},
			}).
			Return(&usecase.ProductList{Products: []*entity.Product{}}, nil)

		e := newTestEcho()
		e.GET("/products", h.ListProducts)

		rec := doRequest(e, http.MethodGet, "/products?page=1&limit=20&categoryId="+categoryID.String(), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin listing includes inactive products", func(t *testing.T) {
		h, catalogUC := createTestCatalogHandler(t)

		catalogUC.EXPECT().
			ListProducts(mock.Anything, mock.MatchedBy(func(q *usecase.ProductQuery) bool { return q.IncludeInactive })).
			Return(&usecase.ProductList{}, nil)

		e := newTestEcho()
		e.GET("/admin/products", h.ListAllProducts)

		rec := doRequest(e, http.MethodGet, "/admin/products", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed category filter", func(t *testing.T) {
		h, _ := createTestCatalogHandler(t)

		e := newTestEcho()
		e.GET("/products", h.ListProducts)

		rec := doRequest(e, http.MethodGet, "/products?categoryId=shoes", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	h, catalogUC := createTestCatalogHandler(t)
	id := uuid.New()
	catalogUC.EXPECT().GetProduct(mock.Anything, id, false).Return(nil, domainerrors.ErrProductNotFound)

	e := newTestEcho()
	e.GET("/products/:id", h.GetProduct)

	rec := doRequest(e, http.MethodGet, "/products/"+id.String(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	categoryID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setupMock  func(catalogUC *mockUsecase.MockCatalogUsecase)
		wantStatus int
	}{
		{
			name: "created with images in order and active by default",
			body: `{"name":"Mug","price":"12.50","stock":4,"categoryId":"` + categoryID.String() + `","images":[{"url":"https://cdn.example.com/a.png"},{"url":"https://cdn.example.com/b.png","alt":"side"}]}`,
			setupMock: func(catalogUC *mockUsecase.MockCatalogUsecase) {
				catalogUC.EXPECT().
					CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.ProductInput) bool {
						return in.Name == "Mug" &&
							in.Price.Equal(decimal.RequireFromString("12.5")) &&
							in.IsActive &&
							in.CategoryID == categoryID &&
							len(in.Images) == 2 &&
							in.Images[1].Alt == "side"
					})).
					Return(&entity.Product{ID: uuid.New(), Name: "Mug"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{"price":"1","stock":1,"categoryId":"` + categoryID.String() + `"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative stock",
			body:       `{"name":"Mug","price":"1","stock":-1,"categoryId":"` + categoryID.String() + `"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "image without url",
			body:       `{"name":"Mug","price":"1","stock":1,"categoryId":"` + categoryID.String() + `","images":[{"alt":"x"}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown category",
			body: `{"name":"Mug","price":"1","stock":1,"categoryId":"` + categoryID.String() + `"}`,
			setupMock: func(catalogUC *mockUsecase.MockCatalogUsecase) {
				catalogUC.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrCategoryNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, catalogUC := createTestCatalogHandler(t)
			if tt.setupMock != nil {
				tt.setupMock(catalogUC)
			}

			e := newTestEcho()
			e.POST("/admin/products", h.CreateProduct)

			rec := doRequest(e, http.MethodPost, "/admin/products", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCatalogHandler_Categories(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		h, catalogUC := createTestCatalogHandler(t)
		catalogUC.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{{ID: uuid.New(), Name: "Kitchen"}}, nil)

		e := newTestEcho()
		e.GET("/categories", h.ListCategories)

		rec := doRequest(e, http.MethodGet, "/categories", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Categories []entity.Category `json:"categories"`
		}
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
		require.Len(t, got.Categories, 1)
		assert.Equal(t, "Kitchen", got.Categories[0].Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		h, catalogUC := createTestCatalogHandler(t)
		catalogUC.EXPECT().CreateCategory(mock.Anything, &usecase.CategoryInput{Name: "Kitchen"}).Return(nil, domainerrors.ErrCategoryAlreadyExists)

		e := newTestEcho()
		e.POST("/admin/categories", h.CreateCategory)

		rec := doRequest(e, http.MethodPost, "/admin/categories", `{"name":"Kitchen"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("delete non-empty category", func(t *testing.T) {
		h, catalogUC := createTestCatalogHandler(t)
		id := uuid.New()
		catalogUC.EXPECT().DeleteCategory(mock.Anything, id).Return(domainerrors.ErrCategoryHasProducts)

		e := newTestEcho()
		e.DELETE("/admin/categories/:id", h.DeleteCategory)

		rec := doRequest(e, http.MethodDelete, "/admin/categories/"+id.String(), "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "category has products", decodeEnvelope(t, rec).Error.Message)
	})
}
