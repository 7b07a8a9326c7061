package mongodb

import (
	"context"
	"testing"
	"time"

	"menudash/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestActivityRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create fills id and timestamp", func(mt *mtest.T) {
		repo := NewActivityRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		activity := &entity.Activity{Type: entity.ActivityCreate, Item: "Jollof", User: "Admin"}
		err := repo.Create(context.Background(), activity)

		require.NoError(mt, err)
		assert.NotEmpty(mt, activity.ID)
		assert.False(mt, activity.Timestamp.IsZero())
	})

	mt.Run("create surfaces write errors", func(mt *mtest.T) {
		repo := NewActivityRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.Create(context.Background(), &entity.Activity{ID: "dup", Type: entity.ActivityDelete, Item: "x", User: "Admin"})

		assert.Error(mt, err)
	})

	mt.Run("list recent decodes documents", func(mt *mtest.T) {
		repo := NewActivityRepository(mt.DB)
		ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		ns := mt.DB.Name() + "." + activityCollection

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "a1"},
				{Key: "type", Value: "update"},
				{Key: "item", Value: "Suya"},
				{Key: "category", Value: "GRILLS"},
				{Key: "user", Value: "Admin"},
				{Key: "timestamp", Value: ts},
			},
		))

		activities, err := repo.ListRecent(context.Background(), 10)

		require.NoError(mt, err)
		require.Len(mt, activities, 1)
		assert.Equal(mt, "a1", activities[0].ID)
		assert.Equal(mt, entity.ActivityUpdate, activities[0].Type)
		assert.Equal(mt, "GRILLS", activities[0].Category)
		assert.True(mt, ts.Equal(activities[0].Timestamp))
	})

	mt.Run("count since reads aggregate result", func(mt *mtest.T) {
		repo := NewActivityRepository(mt.DB)
		ns := mt.DB.Name() + "." + activityCollection

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(3)}},
		))

		count, err := repo.CountSince(context.Background(), time.Now().Add(-time.Hour))

		require.NoError(mt, err)
		assert.Equal(mt, int64(3), count)
	})
}
