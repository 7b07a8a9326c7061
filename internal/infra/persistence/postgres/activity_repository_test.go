package postgres

import (
	"context"
	"testing"
	"time"

	"menudash/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_CreateFillsDefaults(t *testing.T) {
	repo := NewActivityRepository(newTestDB(t))

	activity := &entity.Activity{Type: entity.ActivityCreate, Item: "Jollof", Category: "RICE_DISH", User: "Admin"}
	require.NoError(t, repo.Create(context.Background(), activity))

	assert.NotEmpty(t, activity.ID)
	assert.False(t, activity.Timestamp.IsZero())
}

func TestActivityRepository_CountSinceAndListRecent(t *testing.T) {
	repo := NewActivityRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	entries := []*entity.Activity{
		{Type: entity.ActivityCreate, Item: "old", User: "Admin", Timestamp: now.Add(-40 * 24 * time.Hour)},
		{Type: entity.ActivityUpdate, Item: "mid", User: "Admin", Timestamp: now.Add(-2 * 24 * time.Hour),
			Details: map[string]any{"itemId": "x", "changes": []any{"price"}}},
		{Type: entity.ActivityDelete, Item: "new", User: "Admin", Timestamp: now.Add(-time.Hour)},
	}
	for _, entry := range entries {
		require.NoError(t, repo.Create(ctx, entry))
	}

	count, err := repo.CountSince(ctx, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "new", recent[0].Item)
	assert.Equal(t, "mid", recent[1].Item)
	assert.Equal(t, []any{"price"}, recent[1].Details["changes"])
	assert.Nil(t, recent[0].Details)
}
