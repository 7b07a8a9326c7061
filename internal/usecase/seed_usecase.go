package usecase

import (
	"context"

	"menudash/internal/domain/entity"
)

// SeedUsecase loads the starter catalogue into an empty store.
type SeedUsecase interface {
	Seed(ctx context.Context, catalogue *SeedCatalogue) (*SeedReport, error)
}

// SeedCatalogue is the data written by Seed.
type SeedCatalogue struct {
	Categories []*entity.Category
	Items      []*entity.MenuItem
	Settings   *entity.Settings
	Admin      *CreateUserInput
}

// SeedReport counts what Seed wrote.
type SeedReport struct {
	Categories   int
	Items        int
	SettingsMade bool
	AdminMade    bool
}
