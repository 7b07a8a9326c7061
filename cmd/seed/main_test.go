package main

import (
	"io"
	"log/slog"
	"testing"

	"menudash/config"
	"menudash/internal/domain/entity"
	mockUsecase "menudash/internal/mocks/usecase"
	"menudash/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeedParams(t *testing.T, opts seedOptions) (runSeedParams, *mockUsecase.MockSeedUsecase) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	seeder := mockUsecase.NewMockSeedUsecase(t)

	return runSeedParams{
		Config:  &config.Config{Restaurant: &config.RestaurantConfig{Name: "Kuyash Place", Phone: "080"}},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		DB:      db,
		Seeder:  seeder,
		Options: opts,
	}, seeder
}

func TestSeed_WithAdmin(t *testing.T) {
	params, seeder := newSeedParams(t, seedOptions{
		adminName:     "Admin User",
		adminEmail:    "admin@menudash.local",
		adminPassword: "s3cret!",
	})

	seeder.EXPECT().
		Seed(mock.Anything, mock.MatchedBy(func(c *usecase.SeedCatalogue) bool {
			return len(c.Categories) == 10 &&
				len(c.Items) == len(itemCatalogue) &&
				c.Settings != nil && c.Settings.Name == "Kuyash Place" &&
				c.Settings.Currency == entity.DefaultCurrency &&
				c.Admin != nil && c.Admin.Role == entity.RoleAdmin && c.Admin.Password == "s3cret!"
		})).
		Return(&usecase.SeedReport{Categories: 10, Items: len(itemCatalogue), SettingsMade: true, AdminMade: true}, nil).
		Once()

	require.NoError(t, seed(params))
	assert.True(t, params.DB.Migrator().HasTable("menu_items"))
}

func TestSeed_SkipsAdminWithoutPassword(t *testing.T) {
	params, seeder := newSeedParams(t, seedOptions{reset: true})

	seeder.EXPECT().
		Seed(mock.Anything, mock.MatchedBy(func(c *usecase.SeedCatalogue) bool { return c.Admin == nil })).
		Return(&usecase.SeedReport{}, nil).
		Once()

	require.NoError(t, seed(params))
}

func TestSeed_PropagatesFailure(t *testing.T) {
	params, seeder := newSeedParams(t, seedOptions{})

	seeder.EXPECT().Seed(mock.Anything, mock.Anything).Return(nil, errors.New("disk full")).Once()

	err := seed(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
