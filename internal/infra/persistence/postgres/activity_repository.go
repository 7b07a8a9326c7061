package postgres

import (
	"context"
	"time"

	"menudash/internal/domain/entity"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/repository"
	"menudash/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// activityRepository stores activity entries in the 'activities' table.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now()
	}
	activity.Timestamp = activity.Timestamp.UTC()

	if err := repo.db.WithContext(ctx).Create(fromActivityDomain(activity)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record activity")
	}

	return nil
}

func (repo *activityRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("occurred_at >= ?", since.UTC()).
		Count(&total).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count recent activity")
	}

	return total, nil
}

func (repo *activityRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	var rows []*model.ActivityModel
	err := repo.db.WithContext(ctx).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list recent activity")
	}

	activities := make([]*entity.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, toActivityDomain(row))
	}

	return activities, nil
}
