package persistence

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/jontropati/storefront/internal/config"
)

// Mongo wraps the shared document store client. One client is opened at
// process start and reused by all requests concurrently.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongo connects to the document store and verifies the connection.
func NewMongo(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*Mongo, error) {
	if cfg.Database == "" {
		return nil, errors.New("mongo database name is required")
	}

	opts := options.Client().ApplyURI(cfg.URI)
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("connected to mongodb", zap.String("database", cfg.Database))
	return &Mongo{Client: client, Database: client.Database(cfg.Database)}, nil
}

// Collection returns a handle to the named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	if m == nil || m.Database == nil {
		return nil
	}
	return m.Database.Collection(name)
}

// Ping verifies store connectivity.
func (m *Mongo) Ping(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return errors.New("mongo client not configured")
	}
	return m.Client.Ping(ctx, nil)
}

// Close releases the client.
func (m *Mongo) Close(ctx context.Context) {
	if m != nil && m.Client != nil {
		_ = m.Client.Disconnect(ctx)
	}
}
