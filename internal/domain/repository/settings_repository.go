package repository

import (
	"context"
	"errors"

	"menudash/internal/domain/entity"
)

// ErrSettingsNotFound is returned while the settings singleton has not been created yet.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository persists the restaurant settings singleton.
type SettingsRepository interface {
	// Find returns the oldest settings row.
	Find(ctx context.Context) (*entity.Settings, error)
	Create(ctx context.Context, settings *entity.Settings) error
	Update(ctx context.Context, settings *entity.Settings) error
}
