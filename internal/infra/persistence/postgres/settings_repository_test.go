package postgres

import (
	"context"
	"testing"

	"menudash/internal/domain/entity"
	"menudash/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_Lifecycle(t *testing.T) {
	repo := NewSettingsRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Find(ctx)
	assert.ErrorIs(t, err, repository.ErrSettingsNotFound)

	settings := entity.NewDefaultSettings("Kuyash Place", "+234", "hello@kuyash.example", "@kuyash")
	require.NoError(t, repo.Create(ctx, settings))
	assert.NotEqual(t, uuid.Nil, settings.ID)

	found, err := repo.Find(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, found.ID)
	assert.Equal(t, "₦", found.CurrencySymbol)

	found.Address = "12 Allen Avenue"
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.Find(ctx)
	require.NoError(t, err)
	assert.Equal(t, "12 Allen Avenue", updated.Address)
	assert.Equal(t, "Kuyash Place", updated.Name)
}

func TestSettingsRepository_UpdateMissing(t *testing.T) {
	repo := NewSettingsRepository(newTestDB(t))

	err := repo.Update(context.Background(), &entity.Settings{ID: uuid.New(), Name: "x"})

	assert.ErrorIs(t, err, repository.ErrSettingsNotFound)
}
