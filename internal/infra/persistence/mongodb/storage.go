// Package mongodb stores the activity log in MongoDB.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"menudash/config"
	"menudash/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	activityCollection = "activities"
	defaultTimeout     = 10 * time.Second
)

// Storage owns the MongoDB client for the lifetime of the process.
type Storage struct {
	client   *mongo.Client
	database *mongo.Database
	timeout  time.Duration
}

// StorageParams holds dependencies for Storage, injected by Fx.
type StorageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewStorage creates the client and registers ping, index and disconnect hooks.
func NewStorage(params StorageParams) (*Storage, error) {
	if params.Config.ActivityLog == nil || params.Config.ActivityLog.Mongo == nil {
		return nil, errors.New("activityLog.mongo configuration is required")
	}
	cfg := params.Config.ActivityLog.Mongo
	if cfg.URI == "" || cfg.Database == "" {
		return nil, errors.New("mongo uri and database are required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(50).
		SetMinPoolSize(2).
		SetTimeout(timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	storage := &Storage{
		client:   client,
		database: client.Database(cfg.Database),
		timeout:  timeout,
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := storage.Ping(ctx); err != nil {
				return err
			}
			params.Logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

			return storage.CreateIndexes(ctx)
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return storage.Close(ctx)
		},
	})

	return storage, nil
}

// Ping verifies the primary is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return errors.Wrap(err, "failed to ping mongodb")
	}

	return nil
}

// Close disconnects the client.
func (s *Storage) Close(ctx context.Context) error {
	return errors.WithStack(s.client.Disconnect(ctx))
}

// Database returns the configured database handle.
func (s *Storage) Database() *mongo.Database {
	return s.database
}

// CreateIndexes creates the indexes used by activity queries.
func (s *Storage) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
	}
	if _, err := s.database.Collection(activityCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		return errors.Wrap(err, "failed to create activities indexes")
	}

	return nil
}
