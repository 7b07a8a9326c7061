package usecase

import (
	"context"

	"menudash/internal/domain/entity"
)

// DefaultAnalyticsPeriodDays is the window used when no period is requested.
const DefaultAnalyticsPeriodDays = 30

// AnalyticsUsecase computes dashboard statistics from current state.
type AnalyticsUsecase interface {
	// GetAnalytics builds a snapshot counting activity from the last periodDays days.
	GetAnalytics(ctx context.Context, periodDays int) (*entity.AnalyticsSnapshot, error)
}
