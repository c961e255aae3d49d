package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/errors"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"
	"storefront/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// command is the migration action selected on the command line.
type command string

const (
	commandUp      command = "up"
	commandDown    command = "down"
	commandVersion command = "version"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle

	Command command
	DB      *gorm.DB
	Logger  *slog.Logger
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		slog.Error("usage: migrate <up|down|version>")
		os.Exit(1)
	}

	app := fx.New(
		fx.NopLogger,
		fx.Supply(command(flag.Arg(0))),
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(registerMigration),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
		os.Exit(1)
	}
}

// registerMigration runs the command once the database hook has verified the connection.
func registerMigration(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return runMigration(params)
		},
	})
}

func runMigration(params migrateParams) error {
	sqlDB, err := params.DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return errors.Wrap(err, "failed to open embedded migrations")
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migrate driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrate instance")
	}

	logger := params.Logger
	switch params.Command {
	case commandUp:
		err = m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("No pending migrations")

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "migration up failed")
		}
		logger.Info("Migrations applied successfully")

	case commandDown:
		err = m.Steps(-1)
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("No migrations to roll back")

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "migration down failed")
		}
		logger.Info("Migration rolled back successfully")

	case commandVersion:
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			logger.Info("No migrations applied yet")

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to read migration version")
		}
		logger.Info("Current migration version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	default:
		return errors.Errorf("unknown command %q", params.Command)
	}

	return nil
}
