package impl

import (
	"context"
	"log/slog"

	deliverycontext "menudash/internal/delivery/context"
	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/repository"
	"menudash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	txManager repository.TransactionManager
	users     usecase.UserUsecase
	logger    *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Users     usecase.UserUsecase
	Logger    *slog.Logger
}

// NewSeedService creates the seed usecase.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		txManager: params.TxManager,
		users:     params.Users,
		logger:    params.Logger,
	}
}

// Seed writes the catalogue, skipping categories whose slug exists, items when
// the menu is not empty, settings when present and the admin when the email is taken.
func (s *seedService) Seed(ctx context.Context, catalogue *usecase.SeedCatalogue) (*usecase.SeedReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	report := &usecase.SeedReport{}

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		categoryRepo := txRepoFactory.CategoryRepo()
		for _, category := range catalogue.Categories {
			category.Slug = entity.NormalizeSlug(category.Slug)

			_, err := categoryRepo.FindBySlug(ctx, category.Slug)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrapf(err, "failed to look up category %s", category.Slug)
			}
			if err := categoryRepo.Create(ctx, category); err != nil {
				return errors.Wrapf(err, "failed to create category %s", category.Slug)
			}
			report.Categories++
		}

		menuItemRepo := txRepoFactory.MenuItemRepo()
		existing, err := menuItemRepo.Count(ctx, entity.MenuItemFilter{})
		if err != nil {
			return errors.Wrap(err, "failed to count menu items")
		}
		if existing == 0 {
			nextOrder := make(map[string]int)
			for _, item := range catalogue.Items {
				item.Order = nextOrder[item.Category]
				nextOrder[item.Category]++
				if err := menuItemRepo.Create(ctx, item); err != nil {
					return errors.Wrapf(err, "failed to create menu item %s", item.Name)
				}
				report.Items++
			}
		}

		if catalogue.Settings != nil {
			settingsRepo := txRepoFactory.SettingsRepo()
			_, err := settingsRepo.Find(ctx)
			switch {
			case errors.Is(err, repository.ErrSettingsNotFound):
				if err := settingsRepo.Create(ctx, catalogue.Settings); err != nil {
					return errors.Wrap(err, "failed to create settings")
				}
				report.SettingsMade = true
			case err != nil:
				return errors.Wrap(err, "failed to find settings")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if catalogue.Admin != nil {
		if _, err := s.users.CreateUser(ctx, catalogue.Admin); err == nil {
			report.AdminMade = true
		} else if !errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, errors.Wrap(err, "failed to create admin user")
		}
	}

	logger.Info("Seed finished",
		slog.Int("categories", report.Categories),
		slog.Int("items", report.Items),
		slog.Bool("settings", report.SettingsMade),
		slog.Bool("admin", report.AdminMade),
	)

	return report, nil
}
