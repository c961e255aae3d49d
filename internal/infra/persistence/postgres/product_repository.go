package postgres

import (
	"context"
	"slices"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindByID retrieves a product with its ordered images.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", preloadImages).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDsForUpdate locks the product rows in ascending id order so that concurrent
// orders touching overlapping products always acquire locks in the same sequence.
func (repo *productRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	products := make(map[uuid.UUID]*entity.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
	sorted = slices.Compact(sorted)

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", sorted).
		Order("id ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock products")
	}

	for _, productM := range productModels {
		products[productM.ID] = toProductDomain(productM)
	}

	return products, nil
}

// List returns one page of products, newest first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter, page repository.Page) ([]*entity.Product, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if !filter.IncludeInactive {
			db = db.Where("is_active = ?", true)
		}
		if filter.CategoryID != nil {
			db = db.Where("category_id = ?", *filter.CategoryID)
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Scopes(scope).
		Preload("Images", preloadImages).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// Create persists a product together with its images.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("price and stock must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update saves the product fields and replaces the image list.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	db := repo.db.WithContext(ctx)

	result := db.Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"stock":       product.Stock,
			"is_active":   product.IsActive,
			"category_id": product.CategoryID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	if err := db.Where("product_id = ?", product.ID).
		Delete(&model.ProductImageModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear product images")
	}

	images := fromProductImagesDomain(product.ID, product.Images)
	if len(images) == 0 {
		return nil
	}

	if err := db.Create(&images).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save product images")
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock subtracts quantity with a guarded UPDATE, so stock can never go negative
// even if the caller's lock was bypassed.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStockConflict
	}

	return nil
}

func (repo *productRepository) IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", quantity))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]entity.ProductImage, 0, len(data.Images))
	for _, image := range data.Images {
		images = append(images, entity.ProductImage{
			URL:      image.URL,
			Alt:      image.Alt,
			Position: image.Position,
		})
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		IsActive:    data.IsActive,
		CategoryID:  data.CategoryID,
		Images:      images,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		IsActive:    data.IsActive,
		CategoryID:  data.CategoryID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Images:      fromProductImagesDomain(data.ID, data.Images),
	}
}

func fromProductImagesDomain(productID uuid.UUID, images []entity.ProductImage) []model.ProductImageModel {
	models := make([]model.ProductImageModel, 0, len(images))
	for i, image := range images {
		models = append(models, model.ProductImageModel{
			ProductID: productID,
			URL:       image.URL,
			Alt:       image.Alt,
			Position:  i,
		})
	}

	return models
}
