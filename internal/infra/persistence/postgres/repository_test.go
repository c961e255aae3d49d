package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_FindByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)
		id := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "first_name", "last_name", "role", "created_at", "updated_at"}).
			AddRow(id.String(), "jane@example.com", "hash", "Jane", "Doe", "ADMIN", now, now)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
			WillReturnRows(rows)

		user, err := repo.FindByEmail(context.Background(), "jane@example.com")

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, entity.RoleAdmin, user.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByEmail(context.Background(), "ghost@example.com")

		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: sqlStateUniqueViolation})

	err := repo.Create(context.Background(), &entity.User{Email: "jane@example.com", Role: entity.RoleClient})

	assert.ErrorIs(t, err, repository.ErrUserAlreadyExists)
}

func TestProductRepository_DecrementStock(t *testing.T) {
	t.Run("guarded update succeeds", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProductRepository(db)

		mock.ExpectExec(`UPDATE "products" SET "stock"=stock - \$1`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DecrementStock(context.Background(), uuid.New(), 2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row left means conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProductRepository(db)

		mock.ExpectExec(`UPDATE "products" SET "stock"=stock - \$1`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DecrementStock(context.Background(), uuid.New(), 2)

		assert.ErrorIs(t, err, repository.ErrStockConflict)
	})
}

func TestProductRepository_FindByIDsForUpdate_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	products, err := repo.FindByIDsForUpdate(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Delete(t *testing.T) {
	t.Run("referenced by products", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCategoryRepository(db)

		mock.ExpectExec(`DELETE FROM "categories"`).
			WillReturnError(&pgconn.PgError{Code: sqlStateForeignKeyViolation})

		err := repo.Delete(context.Background(), uuid.New())

		assert.ErrorIs(t, err, domainerrors.ErrCategoryHasProducts)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCategoryRepository(db)

		mock.ExpectExec(`DELETE FROM "categories"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), uuid.New())

		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	})
}

func TestOrderEventRepository_Record(t *testing.T) {
	newEvent := func() *entity.OrderEvent {
		return &entity.OrderEvent{
			ID:            uuid.New(),
			OrderID:       uuid.New(),
			Type:          entity.OrderEventCreated,
			Status:        entity.OrderStatusPending,
			PaymentStatus: entity.PaymentStatusPending,
			TotalAmount:   decimal.RequireFromString("10.00"),
			OccurredAt:    time.Now().UTC(),
		}
	}

	t.Run("inserted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderEventRepository(db)

		mock.ExpectExec(`INSERT INTO "order_events" .* ON CONFLICT \("id"\) DO NOTHING`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		inserted, err := repo.Record(context.Background(), newEvent())

		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("redelivery is ignored", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewOrderEventRepository(db)

		mock.ExpectExec(`INSERT INTO "order_events"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		inserted, err := repo.Record(context.Background(), newEvent())

		require.NoError(t, err)
		assert.False(t, inserted)
	})
}

func TestTransactionManager_Execute(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMockDB(t)
		txManager := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "products" SET "stock"=stock \+ \$1`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.NewProductRepository().IncrementStock(context.Background(), uuid.New(), 3)
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := newMockDB(t)
		txManager := NewTransactionManager(db)
		errBoom := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := txManager.Execute(context.Background(), func(_ repository.RepositoryFactory) error {
			return errBoom
		})

		assert.ErrorIs(t, err, errBoom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
