package postgres

import (
	"context"
	"log/slog"

	"menudash/config"
	"menudash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Migrate creates or updates every table used by the dashboard.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// Reset drops every table and migrates the schema again.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(model.All()...); err != nil {
		return errors.Wrap(err, "failed to drop tables")
	}

	return Migrate(db)
}

// MigrationParams holds dependencies for AutoMigrate, injected by Fx.
type MigrationParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// AutoMigrate registers a start hook migrating the schema when migration.auto is enabled.
func AutoMigrate(params MigrationParams) {
	if !params.Config.Migration.Auto {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Logger.Info("Running schema migration")

			return Migrate(params.DB.WithContext(ctx))
		},
	})
}
