//go:build integration

package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/postgres"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"
	"storefront/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:17-alpine",
		tcpostgres.WithDatabase("storefront"),
		tcpostgres.WithUsername("storefront"),
		tcpostgres.WithPassword("storefront"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	source, err := iofs.New(migrations.FS, ".")
	require.NoError(t, err)
	m, err := migrate.NewWithSourceInstance("iofs", source, connStr)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}
	_, _ = m.Close()

	db, err := gorm.Open(gormpg.Open(connStr), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db
}

type orderFixture struct {
	db      *gorm.DB
	orderUC usecase.OrderUsecase
	product *entity.Product
}

func createTestOrderFixture(t *testing.T, stock int) *orderFixture {
	t.Helper()

	db := setupDatabase(t)
	ctx := context.Background()

	category := &entity.Category{Name: "Lamps"}
	require.NoError(t, postgres.NewCategoryRepository(db).Create(ctx, category))

	product := &entity.Product{
		Name:       "Desk lamp",
		Price:      decimal.RequireFromString("19.99"),
		Stock:      stock,
		IsActive:   true,
		CategoryID: category.ID,
	}
	require.NoError(t, postgres.NewProductRepository(db).Create(ctx, product))

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
	metrics := mockService.NewMockOrderMetrics(t)
	metrics.EXPECT().OrderPlaced(mock.Anything, mock.Anything).Return().Maybe()
	metrics.EXPECT().OrderRejected(mock.Anything, mock.Anything).Return().Maybe()
	metrics.EXPECT().OrderDeleted(mock.Anything, mock.Anything).Return().Maybe()

	orderUC := impl.NewOrderService(impl.OrderServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		OrderRepo: postgres.NewOrderRepository(db),
		Publisher: publisher,
		QRService: mockService.NewMockQRCodeService(t),
		Metrics:   metrics,
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &orderFixture{db: db, orderUC: orderUC, product: product}
}

func guestOrder(productID string, quantity int) *usecase.CreateGuestOrderInput {
	return &usecase.CreateGuestOrderInput{
		ProductID: productID,
		Quantity:  quantity,
		Contact: entity.GuestContact{
			CustomerName:  "Mona",
			CustomerPhone: "0100000000",
			Governorate:   "Cairo",
			Address:       "12 Nile St",
		},
	}
}

func TestOrderPlacement_ConcurrentOrdersNeverOversell(t *testing.T) {
	fixture := createTestOrderFixture(t, 1)
	ctx := context.Background()

	const buyers = 2
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		placed   int
		rejected []error
	)
	for range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := fixture.orderUC.CreateGuestOrder(ctx, guestOrder(fixture.product.ID.String(), 1))

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				rejected = append(rejected, err)

				return
			}
			placed++
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, placed)
	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0], domainerrors.ErrInsufficientStock)

	product, err := postgres.NewProductRepository(fixture.db).FindByID(ctx, fixture.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
}

func TestOrderPlacement_FailedOrderLeavesNoTrace(t *testing.T) {
	fixture := createTestOrderFixture(t, 3)
	ctx := context.Background()

	_, err := fixture.orderUC.CreateOrder(ctx, entity.Identity{Role: entity.RoleClient}, &usecase.CreateOrderInput{
		Items: []usecase.OrderLineInput{
			{ProductID: fixture.product.ID.String(), Quantity: 2},
			{ProductID: fixture.product.ID.String(), Quantity: 2},
		},
		ShippingAddress: "1 Main St",
		BillingAddress:  "1 Main St",
		PaymentMethod:   "CARD",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	var orders int64
	require.NoError(t, fixture.db.Table("orders").Count(&orders).Error)
	assert.Zero(t, orders)

	product, err := postgres.NewProductRepository(fixture.db).FindByID(ctx, fixture.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, product.Stock)
}

func TestOrderPlacement_DeleteRestoresStock(t *testing.T) {
	fixture := createTestOrderFixture(t, 5)
	ctx := context.Background()
	admin := entity.Identity{Role: entity.RoleAdmin}

	order, err := fixture.orderUC.CreateGuestOrder(ctx, guestOrder(fixture.product.ID.String(), 4))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("79.96").Equal(order.TotalAmount))

	require.NoError(t, fixture.orderUC.DeleteOrder(ctx, admin, order.ID))

	product, err := postgres.NewProductRepository(fixture.db).FindByID(ctx, fixture.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, product.Stock)
}
