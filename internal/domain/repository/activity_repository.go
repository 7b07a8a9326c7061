package repository

import (
	"context"
	"time"

	"menudash/internal/domain/entity"
)

// ActivityRepository is the append-only store behind the recent activity feed.
type ActivityRepository interface {
	// Create appends an entry, filling the id and timestamp when they are empty.
	Create(ctx context.Context, activity *entity.Activity) error

	// CountSince returns how many entries were written at or after since.
	CountSince(ctx context.Context, since time.Time) (int64, error)

	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error)
}
