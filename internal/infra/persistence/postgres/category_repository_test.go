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

func seedCategory(t *testing.T, repo repository.CategoryRepository, slug string, order int, active bool) *entity.Category {
	t.Helper()

	category := &entity.Category{
		Slug:     slug,
		Label:    slug + " label",
		Icon:     "🍽",
		Order:    order,
		IsActive: active,
	}
	require.NoError(t, repo.Create(context.Background(), category))

	return category
}

func TestCategoryRepository_ListOrdersAndFiltersActive(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))
	ctx := context.Background()

	seedCategory(t, repo, "SOUPS", 2, true)
	seedCategory(t, repo, "SALAD", 0, true)
	seedCategory(t, repo, "GRILLS", 1, false)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "SALAD", all[0].Slug)
	assert.Equal(t, "GRILLS", all[1].Slug)
	assert.Equal(t, "SOUPS", all[2].Slug)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "SALAD", active[0].Slug)
	assert.Equal(t, "SOUPS", active[1].Slug)

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCategoryRepository_FindBySlugAndID(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))
	ctx := context.Background()

	created := seedCategory(t, repo, "PASTRY", 0, true)

	bySlug, err := repo.FindBySlug(ctx, "PASTRY")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "PASTRY", byID.Slug)

	_, err = repo.FindBySlug(ctx, "MISSING")
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCategoryRepository_CreateDuplicateSlug(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))

	seedCategory(t, repo, "RICE_DISH", 0, true)

	err := repo.Create(context.Background(), &entity.Category{Slug: "RICE_DISH", Label: "Again", Icon: "🍚"})
	assert.ErrorIs(t, err, repository.ErrCategorySlugTaken)
}

func TestCategoryRepository_UpdateKeepsSlug(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))
	ctx := context.Background()

	category := seedCategory(t, repo, "SAUCE", 0, true)
	category.Slug = "RENAMED"
	category.Label = "Sauces"
	category.IsActive = false
	category.Order = 9
	require.NoError(t, repo.Update(ctx, category))

	found, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "SAUCE", found.Slug)
	assert.Equal(t, "Sauces", found.Label)
	assert.False(t, found.IsActive)
	assert.Equal(t, 9, found.Order)
}

func TestCategoryRepository_MaxOrderAndDelete(t *testing.T) {
	repo := NewCategoryRepository(newTestDB(t))
	ctx := context.Background()

	_, found, err := repo.MaxOrder(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	first := seedCategory(t, repo, "A", 0, true)
	seedCategory(t, repo, "B", 4, true)

	maxOrder, found, err := repo.MaxOrder(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 4, maxOrder)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), repository.ErrCategoryNotFound)
}
