package impl

import (
	"context"
	"testing"

	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/repository"
	mockRepo "menudash/internal/mocks/repository"
	mockSvc "menudash/internal/mocks/service"
	"menudash/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return userServiceFixtures{
		service: NewUserService(UserServiceParams{
			UserRepo: userRepo,
			Hasher:   hasher,
			Logger:   newDiscardLogger(),
		}),
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret!").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "ada@example.com" && user.PasswordHash == "hashed" && user.Role == entity.RoleUser
		})).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Name:     "Ada",
		Email:    " Ada@Example.com ",
		Password: "s3cret!",
	})

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret!").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrUserEmailTaken)

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{Name: "Ada", Email: "ada@example.com", Password: "s3cret!"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_CreateUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash("s3cret!").Return("", errors.New("cost out of range"))

	user, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{Name: "Ada", Email: "ada@example.com", Password: "s3cret!"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_CreateUser_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	user, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Name: "Ada", Email: "ada@example.com", Password: "s3cret!", Role: entity.Role("owner"),
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_UpdateUser_NonAdminRoleChangeIgnored(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	stored := &entity.User{ID: id, Name: "Bob", Email: "bob@example.com", Role: entity.RoleUser}
	fx.userRepo.EXPECT().FindByID(ctx, id).Return(stored, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Role == entity.RoleUser && user.Name == "Robert" && user.Phone == "0800"
		})).
		Return(nil)

	actor := &entity.Session{UserID: id, Role: entity.RoleUser}
	user, err := fx.service.UpdateUser(ctx, actor, id, &usecase.UpdateUserInput{
		Name:  ptr("Robert"),
		Phone: ptr("0800"),
		Role:  ptr(entity.RoleAdmin),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, "Robert", user.Name)
}

func TestUserService_UpdateUser_AdminChangesRoleAndPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, Name: "Bob", Email: "bob@example.com", Role: entity.RoleUser}, nil)
	fx.hasher.EXPECT().Hash("n3w-pass").Return("new-hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Role == entity.RoleAdmin && user.PasswordHash == "new-hash"
		})).
		Return(nil)

	actor := &entity.Session{UserID: uuid.New(), Role: entity.RoleAdmin}
	user, err := fx.service.UpdateUser(ctx, actor, id, &usecase.UpdateUserInput{
		Role:     ptr(entity.RoleAdmin),
		Password: ptr("n3w-pass"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestUserService_UpdateUser_OtherUserRejected(t *testing.T) {
	fx := createTestUserService(t)

	actor := &entity.Session{UserID: uuid.New(), Role: entity.RoleUser}
	user, err := fx.service.UpdateUser(context.Background(), actor, uuid.New(), &usecase.UpdateUserInput{Name: ptr("x")})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, id).Return(repository.ErrUserNotFound)

	assert.ErrorIs(t, fx.service.DeleteUser(ctx, id), domainerrors.ErrUserNotFound)
}
