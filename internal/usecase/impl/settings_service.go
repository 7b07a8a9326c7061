package impl

import (
	"context"
	"log/slog"

	"menudash/config"
	deliverycontext "menudash/internal/delivery/context"
	"menudash/internal/domain/entity"
	"menudash/internal/domain/repository"
	"menudash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	restaurant   config.RestaurantConfig
	logger       *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingsRepo repository.SettingsRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSettingsService creates the settings usecase.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	var restaurant config.RestaurantConfig
	if params.Config != nil && params.Config.Restaurant != nil {
		restaurant = *params.Config.Restaurant
	}

	return &settingsService{
		settingsRepo: params.SettingsRepo,
		restaurant:   restaurant,
		logger:       params.Logger,
	}
}

// GetSettings returns the singleton, creating it with defaults on first read.
func (s *settingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Find(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, errors.Wrap(err, "failed to find settings")
	}

	settings = s.defaultSettings()
	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to create default settings")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Default settings created", slog.String("settings_id", settings.ID.String()))

	return settings, nil
}

// UpdateSettings creates the singleton from input when absent, otherwise merges input into it.
func (s *settingsService) UpdateSettings(ctx context.Context, input *usecase.UpdateSettingsInput) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Find(ctx)
	switch {
	case errors.Is(err, repository.ErrSettingsNotFound):
		settings = s.defaultSettings()
		applySettingsInput(settings, input)
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, errors.Wrap(err, "failed to create settings")
		}

		return settings, nil
	case err != nil:
		return nil, errors.Wrap(err, "failed to find settings")
	}

	applySettingsInput(settings, input)
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to update settings")
	}

	return settings, nil
}

func (s *settingsService) defaultSettings() *entity.Settings {
	return entity.NewDefaultSettings(s.restaurant.Name, s.restaurant.Phone, s.restaurant.Email, s.restaurant.Instagram)
}

func applySettingsInput(settings *entity.Settings, input *usecase.UpdateSettingsInput) {
	if input == nil {
		return
	}

	fields := []struct {
		src *string
		dst *string
	}{
		{input.Name, &settings.Name},
		{input.Phone, &settings.Phone},
		{input.Email, &settings.Email},
		{input.Instagram, &settings.Instagram},
		{input.Address, &settings.Address},
		{input.Description, &settings.Description},
		{input.Logo, &settings.Logo},
		{input.PrimaryColor, &settings.PrimaryColor},
		{input.SecondaryColor, &settings.SecondaryColor},
		{input.AccentColor, &settings.AccentColor},
		{input.Currency, &settings.Currency},
		{input.CurrencySymbol, &settings.CurrencySymbol},
		{input.Timezone, &settings.Timezone},
		{input.Language, &settings.Language},
	}
	for _, field := range fields {
		if field.src != nil {
			*field.dst = *field.src
		}
	}
}
