package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/repository"
	"menudash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const recentActivityLimit = 10

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	menuItemRepo repository.MenuItemRepository
	categoryRepo repository.CategoryRepository
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
	now          func() time.Time
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	MenuItemRepo repository.MenuItemRepository
	CategoryRepo repository.CategoryRepository
	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewAnalyticsService creates the analytics usecase.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		menuItemRepo: params.MenuItemRepo,
		categoryRepo: params.CategoryRepo,
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// GetAnalytics recomputes every figure from the current store state.
func (s *analyticsService) GetAnalytics(ctx context.Context, periodDays int) (*entity.AnalyticsSnapshot, error) {
	if periodDays < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("period must not be negative")
	}
	if periodDays == 0 {
		periodDays = usecase.DefaultAnalyticsPeriodDays
	}

	var (
		snapshot entity.AnalyticsSnapshot
		err      error
	)

	if snapshot.Stats.TotalItems, err = s.menuItemRepo.Count(ctx, entity.MenuItemFilter{}); err != nil {
		return nil, errors.Wrap(err, "failed to count menu items")
	}

	available := true
	if snapshot.Stats.AvailableItems, err = s.menuItemRepo.Count(ctx, entity.MenuItemFilter{Available: &available}); err != nil {
		return nil, errors.Wrap(err, "failed to count available menu items")
	}

	if snapshot.Stats.TotalCategories, err = s.categoryRepo.CountActive(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count categories")
	}

	since := s.now().AddDate(0, 0, -periodDays)
	if snapshot.Stats.RecentUpdates, err = s.activityRepo.CountSince(ctx, since); err != nil {
		return nil, errors.Wrap(err, "failed to count recent activity")
	}

	counts, err := s.menuItemRepo.CountGroupedByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group menu items by category")
	}
	categories, err := s.categoryRepo.List(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	snapshot.CategoryBreakdown = CategoryBreakdown(counts, categories)

	recent, err := s.activityRepo.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent activity")
	}
	for _, activity := range recent {
		activity.Details = nil
	}
	snapshot.RecentActivity = recent

	if snapshot.PriceStats, err = s.menuItemRepo.PriceStats(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to compute price statistics")
	}

	return &snapshot, nil
}

// CategoryBreakdown labels each category count and computes its rounded share of
// all items. Categories without a stored label fall back to their slug. Rows are
// sorted by count, largest first.
func CategoryBreakdown(counts []entity.CategoryCount, categories []*entity.Category) []entity.CategoryShare {
	labels := make(map[string]string, len(categories))
	for _, category := range categories {
		labels[category.Slug] = category.Label
	}

	var total int64
	for _, count := range counts {
		total += count.Count
	}

	shares := make([]entity.CategoryShare, 0, len(counts))
	for _, count := range counts {
		label, ok := labels[count.Category]
		if !ok || label == "" {
			label = count.Category
		}

		percentage := 0
		if total > 0 {
			percentage = int(math.Floor(float64(count.Count)*100/float64(total) + 0.5))
		}

		shares = append(shares, entity.CategoryShare{
			Category:   label,
			Count:      count.Count,
			Percentage: percentage,
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}

		return shares[i].Category < shares[j].Category
	})

	return shares
}
