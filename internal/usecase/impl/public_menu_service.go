package impl

import (
	"context"

	"menudash/internal/domain/entity"
	"menudash/internal/domain/repository"
	"menudash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// publicMenuService implements the PublicMenuUsecase interface.
type publicMenuService struct {
	settings     usecase.SettingsUsecase
	categoryRepo repository.CategoryRepository
	menuItemRepo repository.MenuItemRepository
}

// PublicMenuServiceParams holds dependencies for PublicMenuService, injected by Fx.
type PublicMenuServiceParams struct {
	fx.In

	Settings     usecase.SettingsUsecase
	CategoryRepo repository.CategoryRepository
	MenuItemRepo repository.MenuItemRepository
}

// NewPublicMenuService creates the public menu usecase.
func NewPublicMenuService(params PublicMenuServiceParams) usecase.PublicMenuUsecase {
	return &publicMenuService{
		settings:     params.Settings,
		categoryRepo: params.CategoryRepo,
		menuItemRepo: params.MenuItemRepo,
	}
}

// GetPublicMenu collects what the customer menu page renders. Items of inactive
// or unknown categories are left out.
func (s *publicMenuService) GetPublicMenu(ctx context.Context) (*usecase.PublicMenu, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.List(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active categories")
	}

	available := true
	items, err := s.menuItemRepo.List(ctx, entity.MenuItemFilter{Available: &available}, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available menu items")
	}

	grouped := make(map[string][]*entity.MenuItem, len(categories))
	for _, category := range categories {
		grouped[category.Slug] = []*entity.MenuItem{}
	}
	for _, item := range items {
		if group, ok := grouped[item.Category]; ok {
			grouped[item.Category] = append(group, item)
		}
	}

	return &usecase.PublicMenu{
		Settings:   settings,
		Categories: categories,
		Items:      grouped,
	}, nil
}
