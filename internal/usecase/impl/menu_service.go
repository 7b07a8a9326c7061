package impl

import (
	"context"
	"log/slog"
	"strings"

	"menudash/config"
	deliverycontext "menudash/internal/delivery/context"
	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/repository"
	"menudash/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	txManager    repository.TransactionManager
	menuItemRepo repository.MenuItemRepository
	activityRepo repository.ActivityRepository
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MenuItemRepo repository.MenuItemRepository
	ActivityRepo repository.ActivityRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewMenuService creates the menu usecase.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	defaultLimit, maxLimit := 20, 100
	if params.Config != nil && params.Config.Pagination != nil {
		defaultLimit = params.Config.Pagination.DefaultLimit
		maxLimit = params.Config.Pagination.MaxLimit
	}

	return &menuService{
		txManager:    params.TxManager,
		menuItemRepo: params.MenuItemRepo,
		activityRepo: params.ActivityRepo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       params.Logger,
	}
}

// ListItems returns one page of items matching the filters.
func (s *menuService) ListItems(ctx context.Context, input *usecase.ListMenuItemsInput) (*usecase.ListMenuItemsOutput, error) {
	if input == nil {
		input = &usecase.ListMenuItemsInput{}
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if s.maxLimit > 0 && limit > s.maxLimit {
		limit = s.maxLimit
	}

	filter := entity.MenuItemFilter{
		Category:  strings.TrimSpace(input.Category),
		Available: input.Available,
		Search:    strings.TrimSpace(input.Search),
	}

	total, err := s.menuItemRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count menu items")
	}

	pagination := entity.NewPagination(page, limit, total)
	items, err := s.menuItemRepo.List(ctx, filter, pagination.Offset(), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return &usecase.ListMenuItemsOutput{
		Items:      items,
		Pagination: pagination,
	}, nil
}

// GetItem returns a single item.
func (s *menuService) GetItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	return item, nil
}

// CreateItem appends a new item after the last one of its category and records the creation.
func (s *menuService) CreateItem(ctx context.Context, input *usecase.CreateMenuItemInput) (*entity.MenuItem, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	item := &entity.MenuItem{
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Category:    strings.TrimSpace(input.Category),
		Description: input.Description,
		Image:       input.Image,
		Available:   true,
	}
	if input.Available != nil {
		item.Available = *input.Available
	}
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.MenuItemRepo()

		maxOrder, found, err := repo.MaxOrder(ctx, item.Category)
		if err != nil {
			return errors.Wrap(err, "failed to read highest order")
		}
		item.Order = entity.NextOrder(maxOrder, found)

		if err := repo.Create(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create menu item")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Menu item created", slog.String("item_id", item.ID.String()), slog.String("category", item.Category), slog.Int("order", item.Order))

	if err := s.recordActivity(ctx, entity.ActivityCreate, item, map[string]any{"itemId": item.ID.String()}); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem applies the present fields and records which ones changed.
func (s *menuService) UpdateItem(ctx context.Context, id uuid.UUID, input *usecase.UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if input == nil {
		input = &usecase.UpdateMenuItemInput{}
	}
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Category != nil {
		item.Category = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Image != nil {
		item.Image = *input.Image
	}
	if input.Available != nil {
		item.Available = *input.Available
	}
	if input.Order != nil {
		item.Order = *input.Order
	}
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}

	if err := s.menuItemRepo.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update menu item")
	}

	details := map[string]any{
		"itemId":  item.ID.String(),
		"changes": input.ChangedFields(),
	}
	if err := s.recordActivity(ctx, entity.ActivityUpdate, item, details); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes an item and records the deletion.
func (s *menuService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}

	if err := s.menuItemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return domainerrors.ErrMenuItemNotFound
		}

		return errors.Wrap(err, "failed to delete menu item")
	}

	return s.recordActivity(ctx, entity.ActivityDelete, item, map[string]any{"itemId": item.ID.String()})
}

// ReorderItems applies each assignment as its own update. Earlier updates stay
// applied when a later one fails; unknown ids are skipped.
func (s *menuService) ReorderItems(ctx context.Context, assignments []entity.OrderAssignment) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if len(assignments) == 0 {
		return domainerrors.ErrInvalidReorder
	}
	for _, assignment := range assignments {
		if assignment.ID == uuid.Nil {
			return domainerrors.ErrInvalidReorder.WithDetails("item id is required")
		}
	}

	for _, assignment := range assignments {
		err := s.menuItemRepo.UpdateOrder(ctx, assignment.ID, assignment.Order)
		if err == nil {
			continue
		}
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			logger.Warn("Skipping reorder of unknown menu item", slog.String("item_id", assignment.ID.String()))

			continue
		}

		return errors.Wrapf(err, "failed to reorder menu item %s", assignment.ID)
	}

	return nil
}

// recordActivity appends the activity entry for a mutation. A failure fails the request
// even though the mutation itself has been stored.
func (s *menuService) recordActivity(ctx context.Context, activityType entity.ActivityType, item *entity.MenuItem, details map[string]any) error {
	activity := &entity.Activity{
		Type:     activityType,
		Item:     item.Name,
		Category: item.Category,
		User:     deliverycontext.ActorName(ctx),
		Details:  details,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to record menu activity",
			slog.String("type", string(activityType)),
			slog.String("item_id", item.ID.String()),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to record activity")
	}

	return nil
}

func validateMenuItem(item *entity.MenuItem) error {
	switch {
	case item.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case item.Category == "":
		return domainerrors.ErrValidationFailed.WithDetails("category is required")
	case item.Price < 0:
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	return nil
}
