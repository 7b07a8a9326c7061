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

func TestUserRepository_CreateNormalizesEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &entity.User{Name: "Admin", Email: "  Admin@Kuyash.Example ", PasswordHash: "hash", Role: entity.RoleAdmin}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, "admin@kuyash.example", user.Email)

	found, err := repo.FindByEmail(ctx, "ADMIN@kuyash.example")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, entity.RoleAdmin, found.Role)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Name: "One", Email: "staff@kuyash.example", PasswordHash: "h", Role: entity.RoleUser}))

	err := repo.Create(ctx, &entity.User{Name: "Two", Email: "STAFF@kuyash.example", PasswordHash: "h", Role: entity.RoleUser})
	assert.ErrorIs(t, err, repository.ErrUserEmailTaken)
}

func TestUserRepository_ListUpdateDelete(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &entity.User{Name: "Staff", Email: "staff@kuyash.example", PasswordHash: "h", Role: entity.RoleUser}
	require.NoError(t, repo.Create(ctx, user))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	user.Phone = "0800"
	user.Role = entity.RoleAdmin
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "0800", found.Phone)
	assert.Equal(t, entity.RoleAdmin, found.Role)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), repository.ErrUserNotFound)
}
