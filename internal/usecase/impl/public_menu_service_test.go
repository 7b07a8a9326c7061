package impl

import (
	"context"
	"testing"

	"menudash/internal/domain/entity"
	mockRepo "menudash/internal/mocks/repository"
	mockUsecase "menudash/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPublicMenuService_GetPublicMenu_GroupsAvailableItems(t *testing.T) {
	settingsUsecase := mockUsecase.NewMockSettingsUsecase(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	menuItemRepo := mockRepo.NewMockMenuItemRepository(t)

	service := NewPublicMenuService(PublicMenuServiceParams{
		Settings:     settingsUsecase,
		CategoryRepo: categoryRepo,
		MenuItemRepo: menuItemRepo,
	})
	ctx := context.Background()

	settings := entity.NewDefaultSettings("Mama's Kitchen", "", "", "")
	soup := &entity.MenuItem{Name: "Egusi", Category: "SOUPS", Available: true}
	hidden := &entity.MenuItem{Name: "Old", Category: "RETIRED", Available: true}

	settingsUsecase.EXPECT().GetSettings(ctx).Return(settings, nil)
	categoryRepo.EXPECT().List(ctx, true).Return([]*entity.Category{
		{Slug: "SOUPS", IsActive: true},
		{Slug: "GRILLS", IsActive: true},
	}, nil)
	menuItemRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter entity.MenuItemFilter) bool {
			return filter.Available != nil && *filter.Available && filter.Category == ""
		}), 0, 0).
		Return([]*entity.MenuItem{soup, hidden}, nil)

	menu, err := service.GetPublicMenu(ctx)

	require.NoError(t, err)
	assert.Same(t, settings, menu.Settings)
	assert.Len(t, menu.Categories, 2)
	assert.Equal(t, []*entity.MenuItem{soup}, menu.Items["SOUPS"])
	assert.Empty(t, menu.Items["GRILLS"])
	assert.NotContains(t, menu.Items, "RETIRED")
}
