package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type catalogService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	defaultLimit, maxLimit := pageLimits(params.Config)

	return &catalogService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
	}
	if category.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	err := srv.categoryRepo.Create(ctx, category)
	if errors.Is(err, repository.ErrDuplicateCategory) {
		return nil, domainerrors.ErrCategoryAlreadyExists
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("categoryID", category.ID.String()))

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	err := srv.categoryRepo.Update(ctx, &entity.Category{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
	})
	switch {
	case errors.Is(err, repository.ErrCategoryNotFound):
		return nil, domainerrors.ErrCategoryNotFound
	case errors.Is(err, repository.ErrDuplicateCategory):
		return nil, domainerrors.ErrCategoryAlreadyExists
	case err != nil:
		return nil, errors.Wrap(err, "failed to update category")
	}

	return srv.findCategory(ctx, id)
}

// DeleteCategory removes an empty category.
func (srv *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	count, err := srv.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count category products")
	}
	if count > 0 {
		return domainerrors.ErrCategoryHasProducts
	}

	err = srv.categoryRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.String("categoryID", id.String()))

	return nil
}

func (srv *catalogService) ListProducts(ctx context.Context, query *usecase.ProductQuery) (*usecase.ProductList, error) {
	number, limit := util.NormalizePage(query.Page.Page, query.Page.Limit, srv.defaultLimit, srv.maxLimit)

	filter := repository.ProductFilter{
		CategoryID:      query.CategoryID,
		IncludeInactive: query.IncludeInactive,
	}
	products, total, err := srv.productRepo.List(ctx, filter, repository.Page{Number: number, Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductList{
		Products: products,
		Pagination: usecase.Pagination{
			Page:       number,
			Limit:      limit,
			Total:      total,
			TotalPages: util.TotalPages(total, limit),
		},
	}, nil
}

// GetProduct hides inactive products from the storefront.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID, includeInactive bool) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if !product.IsActive && !includeInactive {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := newProductFromInput(input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureCategoryExists(ctx, repoFactory.NewCategoryRepository(), product.CategoryID); err != nil {
			return err
		}

		err := repoFactory.NewProductRepository().Create(ctx, product)
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID.String()))

	return srv.GetProduct(ctx, product.ID, true)
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := newProductFromInput(input)
	if err != nil {
		return nil, err
	}
	product.ID = id

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureCategoryExists(ctx, repoFactory.NewCategoryRepository(), product.CategoryID); err != nil {
			return err
		}

		err := repoFactory.NewProductRepository().Update(ctx, product)
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return domainerrors.ErrProductNotFound
		case errors.Is(err, repository.ErrCategoryNotFound):
			return domainerrors.ErrCategoryNotFound
		}

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return srv.GetProduct(ctx, id, true)
}

// DeleteProduct removes a product. Order items keep their price snapshot and lose the reference.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := srv.productRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id.String()))

	return nil
}

func (srv *catalogService) findCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

func ensureCategoryExists(ctx context.Context, categoryRepo repository.CategoryRepository, id uuid.UUID) error {
	_, err := categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound
	}

	return err
}

func newProductFromInput(input *usecase.ProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrInvalidPrice
	}
	if input.Stock < 0 {
		return nil, domainerrors.ErrInvalidStock
	}

	images := slices.Clone(input.Images)
	for i := range images {
		images[i].Position = i
	}

	return &entity.Product{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price.Round(2),
		Stock:       input.Stock,
		IsActive:    input.IsActive,
		CategoryID:  input.CategoryID,
		Images:      images,
	}, nil
}
