package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// NewMongoDatabase connects to MongoDB and returns a handle to the named
// database. When pingCheck is set, the connection is verified before use.
func NewMongoDatabase(ctx context.Context, uri, dbName string, pingCheck bool) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if pingCheck {
		ctxPing, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		if err := client.Ping(ctxPing, nil); err != nil {
			return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
		}
	}

	return client.Database(dbName), nil
}

// CloseMongo disconnects the client behind a database handle.
func CloseMongo(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.Client().Disconnect(ctx)
}
