package usecase

import (
	"context"

	"menudash/internal/domain/entity"
)

// SettingsUsecase reads and writes the restaurant settings singleton.
type SettingsUsecase interface {
	// GetSettings returns the settings, creating the default document on first use.
	GetSettings(ctx context.Context) (*entity.Settings, error)

	// UpdateSettings merges input into the settings, creating them when absent.
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error)
}

// UpdateSettingsInput carries the settings fields present in a request.
type UpdateSettingsInput struct {
	Name           *string
	Phone          *string
	Email          *string
	Instagram      *string
	Address        *string
	Description    *string
	Logo           *string
	PrimaryColor   *string
	SecondaryColor *string
	AccentColor    *string
	Currency       *string
	CurrencySymbol *string
	Timezone       *string
	Language       *string
}
