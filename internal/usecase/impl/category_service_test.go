package impl

import (
	"context"
	"testing"

	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/repository"
	mockRepo "menudash/internal/mocks/repository"
	"menudash/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	return categoryServiceFixtures{
		service: NewCategoryService(CategoryServiceParams{
			TxManager:    txManager,
			CategoryRepo: categoryRepo,
			Logger:       newDiscardLogger(),
		}),
		txManager:    txManager,
		categoryRepo: categoryRepo,
	}
}

func TestCategoryService_CreateCategory_AssignsGlobalOrder(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRepo := mockRepo.NewMockCategoryRepository(t)
	factory.EXPECT().CategoryRepo().Return(txRepo)
	expectTransaction(fx.txManager, factory)

	txRepo.EXPECT().MaxOrder(ctx).Return(1, true, nil)
	txRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{
		Slug:  " soups ",
		Label: "Soups",
		Icon:  "🍲",
	})

	require.NoError(t, err)
	assert.Equal(t, "SOUPS", category.Slug)
	assert.Equal(t, 2, category.Order)
	assert.True(t, category.IsActive)
}

func TestCategoryService_CreateCategory_Duplicate(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRepo := mockRepo.NewMockCategoryRepository(t)
	factory.EXPECT().CategoryRepo().Return(txRepo)
	expectTransaction(fx.txManager, factory)

	txRepo.EXPECT().MaxOrder(ctx).Return(0, false, nil)
	txRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(repository.ErrCategorySlugTaken)

	category, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{Slug: "SOUPS", Label: "Soups", IsActive: ptr(false)})

	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}

func TestCategoryService_CreateCategory_Validation(t *testing.T) {
	fx := createTestCategoryService(t)

	category, err := fx.service.CreateCategory(context.Background(), &usecase.CreateCategoryInput{Slug: "SOUPS"})

	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCategoryService_GetCategory_ResolvesIDOrSlug(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Category{ID: id, Slug: "GRILLS", Label: "Grills"}

	fx.categoryRepo.EXPECT().FindByID(ctx, id).Return(stored, nil)
	fx.categoryRepo.EXPECT().FindBySlug(ctx, "GRILLS").Return(stored, nil)

	byID, err := fx.service.GetCategory(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, stored, byID)

	bySlug, err := fx.service.GetCategory(ctx, "grills")
	require.NoError(t, err)
	assert.Equal(t, stored, bySlug)
}

func TestCategoryService_UpdateCategory_KeepsSlug(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	stored := &entity.Category{ID: uuid.New(), Slug: "SOUPS", Label: "Soups", Order: 3, IsActive: true}

	fx.categoryRepo.EXPECT().FindBySlug(ctx, "SOUPS").Return(stored, nil)
	fx.categoryRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(category *entity.Category) bool {
			return category.Slug == "SOUPS" && category.Label == "Hot soups" && category.Order == 0 && !category.IsActive
		})).
		Return(nil)

	category, err := fx.service.UpdateCategory(ctx, "SOUPS", &usecase.UpdateCategoryInput{
		Label:    ptr("Hot soups"),
		Order:    ptr(0),
		IsActive: ptr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Hot soups", category.Label)
}

func TestCategoryService_UpdateCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindBySlug(ctx, "NOPE").Return(nil, repository.ErrCategoryNotFound)

	category, err := fx.service.UpdateCategory(ctx, "NOPE", &usecase.UpdateCategoryInput{})

	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_DeleteCategory_BlockedWhileReferenced(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	txMenuItemRepo := mockRepo.NewMockMenuItemRepository(t)
	factory.EXPECT().CategoryRepo().Return(txCategoryRepo)
	factory.EXPECT().MenuItemRepo().Return(txMenuItemRepo)
	expectTransaction(fx.txManager, factory)

	txCategoryRepo.EXPECT().FindBySlug(ctx, "A").Return(&entity.Category{ID: uuid.New(), Slug: "A"}, nil)
	txMenuItemRepo.EXPECT().CountByCategory(ctx, "A").Return(int64(3), nil)

	err := fx.service.DeleteCategory(ctx, "A")

	require.ErrorIs(t, err, domainerrors.ErrCategoryInUse)
	assert.Contains(t, err.Error(), "3")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestCategoryService_DeleteCategory_Unreferenced(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	txMenuItemRepo := mockRepo.NewMockMenuItemRepository(t)
	factory.EXPECT().CategoryRepo().Return(txCategoryRepo)
	factory.EXPECT().MenuItemRepo().Return(txMenuItemRepo)
	expectTransaction(fx.txManager, factory)

	txCategoryRepo.EXPECT().FindByID(ctx, id).Return(&entity.Category{ID: id, Slug: "A"}, nil)
	txMenuItemRepo.EXPECT().CountByCategory(ctx, "A").Return(int64(0), nil)
	txCategoryRepo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, fx.service.DeleteCategory(ctx, id.String()))
}
