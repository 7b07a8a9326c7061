package postgres

import (
	"context"

	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/repository"
	"menudash/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// settingsRepository implements repository.SettingsRepository using GORM.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// Find returns the first settings row ever written.
func (repo *settingsRepository) Find(ctx context.Context) (*entity.Settings, error) {
	var row model.SettingsModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find settings")
	}

	return toSettingsDomain(&row), nil
}

func (repo *settingsRepository) Create(ctx context.Context, settings *entity.Settings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}

	row := fromSettingsDomain(settings)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create settings")
	}

	settings.CreatedAt = row.CreatedAt
	settings.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *settingsRepository) Update(ctx context.Context, settings *entity.Settings) error {
	row := fromSettingsDomain(settings)

	result := repo.db.WithContext(ctx).Model(row).Select("*").Omit("id", "created_at").Updates(row)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update settings")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSettingsNotFound
	}

	settings.UpdatedAt = row.UpdatedAt

	return nil
}
