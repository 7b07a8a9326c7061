package persistence

import (
	"io"
	"log/slog"
	"testing"

	"menudash/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newProviderParams(t *testing.T, cfg *config.Config) ActivityRepositoryParams {
	return ActivityRepositoryParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewActivityRepository_DefaultsToPostgres(t *testing.T) {
	repo, err := NewActivityRepository(newProviderParams(t, &config.Config{}))

	require.NoError(t, err)
	assert.NotNil(t, repo)
}

func TestNewActivityRepository_UnknownProvider(t *testing.T) {
	cfg := &config.Config{ActivityLog: &config.ActivityLogConfig{Provider: "redis"}}

	_, err := NewActivityRepository(newProviderParams(t, cfg))

	assert.ErrorContains(t, err, "unsupported activity log provider")
}

func TestNewActivityRepository_MongoRequiresConfig(t *testing.T) {
	cfg := &config.Config{ActivityLog: &config.ActivityLogConfig{Provider: config.ActivityLogProviderMongo}}

	_, err := NewActivityRepository(newProviderParams(t, cfg))

	assert.Error(t, err)
}
