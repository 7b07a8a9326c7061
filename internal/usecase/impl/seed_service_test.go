package impl

import (
	"context"
	"testing"

	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/repository"
	mockRepo "menudash/internal/mocks/repository"
	mockUsecase "menudash/internal/mocks/usecase"
	"menudash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeedService_Seed_EmptyStore(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	users := mockUsecase.NewMockUserUsecase(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	menuItemRepo := mockRepo.NewMockMenuItemRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)

	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	factory.EXPECT().MenuItemRepo().Return(menuItemRepo)
	factory.EXPECT().SettingsRepo().Return(settingsRepo)
	expectTransaction(txManager, factory)

	service := NewSeedService(SeedServiceParams{TxManager: txManager, Users: users, Logger: newDiscardLogger()})
	ctx := context.Background()

	categoryRepo.EXPECT().FindBySlug(ctx, "SOUPS").Return(nil, repository.ErrCategoryNotFound)
	categoryRepo.EXPECT().FindBySlug(ctx, "GRILLS").Return(&entity.Category{Slug: "GRILLS"}, nil)
	categoryRepo.EXPECT().Create(ctx, mock.MatchedBy(func(category *entity.Category) bool {
		return category.Slug == "SOUPS"
	})).Return(nil)

	menuItemRepo.EXPECT().Count(ctx, entity.MenuItemFilter{}).Return(int64(0), nil)
	var orders []int
	menuItemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MenuItem")).
		Run(func(_ context.Context, item *entity.MenuItem) {
			orders = append(orders, item.Order)
		}).
		Return(nil).
		Times(3)

	settingsRepo.EXPECT().Find(ctx).Return(nil, repository.ErrSettingsNotFound)
	settingsRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Settings")).Return(nil)

	admin := &usecase.CreateUserInput{Name: "Admin", Email: "admin@example.com", Password: "pw", Role: entity.RoleAdmin}
	users.EXPECT().CreateUser(ctx, admin).Return(nil, domainerrors.ErrUserAlreadyExists)

	report, err := service.Seed(ctx, &usecase.SeedCatalogue{
		Categories: []*entity.Category{{Slug: "soups"}, {Slug: "GRILLS"}},
		Items: []*entity.MenuItem{
			{Name: "Egusi", Category: "SOUPS"},
			{Name: "Suya", Category: "GRILLS"},
			{Name: "Okra", Category: "SOUPS"},
		},
		Settings: entity.NewDefaultSettings("Mama's Kitchen", "", "", ""),
		Admin:    admin,
	})

	require.NoError(t, err)
	assert.Equal(t, &usecase.SeedReport{Categories: 1, Items: 3, SettingsMade: true}, report)
	assert.Equal(t, []int{0, 0, 1}, orders)
}

func TestSeedService_Seed_SkipsPopulatedMenu(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	users := mockUsecase.NewMockUserUsecase(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	menuItemRepo := mockRepo.NewMockMenuItemRepository(t)

	factory.EXPECT().CategoryRepo().Return(categoryRepo)
	factory.EXPECT().MenuItemRepo().Return(menuItemRepo)
	expectTransaction(txManager, factory)

	service := NewSeedService(SeedServiceParams{TxManager: txManager, Users: users, Logger: newDiscardLogger()})
	ctx := context.Background()

	menuItemRepo.EXPECT().Count(ctx, entity.MenuItemFilter{}).Return(int64(12), nil)

	report, err := service.Seed(ctx, &usecase.SeedCatalogue{
		Items: []*entity.MenuItem{{Name: "Egusi", Category: "SOUPS"}},
	})

	require.NoError(t, err)
	assert.Zero(t, report.Items)
	assert.False(t, report.AdminMade)
}
