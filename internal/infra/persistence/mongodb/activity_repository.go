package mongodb

import (
	"context"
	"time"

	"menudash/internal/domain/entity"
	"menudash/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	writeTimeout = 10 * time.Second
	readTimeout  = 5 * time.Second
)

// activityDocument is the BSON shape of an activity entry.
type activityDocument struct {
	ID        string         `bson:"_id"`
	Type      string         `bson:"type"`
	Item      string         `bson:"item"`
	Category  string         `bson:"category,omitempty"`
	User      string         `bson:"user"`
	Details   map[string]any `bson:"details,omitempty"`
	Timestamp time.Time      `bson:"timestamp"`
}

type activityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository stores activity entries in the 'activities' collection of db.
func NewActivityRepository(db *mongo.Database) repository.ActivityRepository {
	return &activityRepository{
		collection: db.Collection(activityCollection),
	}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, toActivityDocument(activity)); err != nil {
		return errors.Wrap(err, "failed to record activity")
	}

	return nil
}

func (r *activityRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"timestamp": bson.M{"$gte": since}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count recent activity")
	}

	return count, nil
}

func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent activity")
	}
	defer cursor.Close(ctx)

	var docs []activityDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode recent activity")
	}

	activities := make([]*entity.Activity, 0, len(docs))
	for i := range docs {
		activities = append(activities, toActivityEntity(&docs[i]))
	}

	return activities, nil
}

func toActivityDocument(activity *entity.Activity) *activityDocument {
	return &activityDocument{
		ID:        activity.ID,
		Type:      string(activity.Type),
		Item:      activity.Item,
		Category:  activity.Category,
		User:      activity.User,
		Details:   activity.Details,
		Timestamp: activity.Timestamp,
	}
}

func toActivityEntity(doc *activityDocument) *entity.Activity {
	return &entity.Activity{
		ID:        doc.ID,
		Type:      entity.ActivityType(doc.Type),
		Item:      doc.Item,
		Category:  doc.Category,
		User:      doc.User,
		Details:   doc.Details,
		Timestamp: doc.Timestamp,
	}
}
