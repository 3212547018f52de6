package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Storage struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewMongoStorage connects once per process lifetime; the handle is
// shared through injection and closed at shutdown.
func NewMongoStorage(ctx context.Context, uri string, dbName string) (*Storage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Storage{Client: client, DB: client.Database(dbName)}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	if s.Client != nil {
		return s.Client.Disconnect(ctx)
	}
	return nil
}
