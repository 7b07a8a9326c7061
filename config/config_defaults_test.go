package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, ActivityLogProviderPostgres, cfg.ActivityLog.Provider)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultSessionTTL, cfg.Auth.SessionTTL)
	assert.Equal(t, defaultCookieName, cfg.Auth.CookieName)
	assert.Equal(t, 512, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	assert.Equal(t, "/menu/view", cfg.QRCode.PublicMenuPath)
	assert.Equal(t, 20, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
	assert.NotNil(t, cfg.Restaurant)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		ActivityLog: &ActivityLogConfig{Provider: ActivityLogProviderMongo},
		Auth:        &AuthConfig{BcryptCost: 4, CookieName: "sid"},
		Pagination:  &PaginationConfig{DefaultLimit: 10, MaxLimit: 50},
	}

	applyDefaults(cfg)

	assert.Equal(t, ActivityLogProviderMongo, cfg.ActivityLog.Provider)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, "sid", cfg.Auth.CookieName)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 50, cfg.Pagination.MaxLimit)
}
