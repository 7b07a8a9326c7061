// Package persistence selects storage backends from configuration.
package persistence

import (
	"log/slog"

	"menudash/config"
	"menudash/internal/domain/repository"
	"menudash/internal/infra/persistence/mongodb"
	"menudash/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// ActivityRepositoryParams holds dependencies for the activity log, injected by Fx.
type ActivityRepositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// NewActivityRepository creates the activity log backend named by activityLog.provider.
func NewActivityRepository(params ActivityRepositoryParams) (repository.ActivityRepository, error) {
	provider := config.ActivityLogProviderPostgres
	if params.Config.ActivityLog != nil && params.Config.ActivityLog.Provider != "" {
		provider = params.Config.ActivityLog.Provider
	}

	switch provider {
	case config.ActivityLogProviderPostgres:
		params.Logger.Info("Using PostgreSQL activity log")

		return postgres.NewActivityRepository(params.DB), nil

	case config.ActivityLogProviderMongo:
		storage, err := mongodb.NewStorage(mongodb.StorageParams{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create mongo activity log")
		}
		params.Logger.Info("Using MongoDB activity log")

		return mongodb.NewActivityRepository(storage.Database()), nil

	default:
		return nil, errors.Errorf("unsupported activity log provider: %s", provider)
	}
}
