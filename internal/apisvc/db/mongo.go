package db

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo opens the chat history database. The chat route group is the
// only consumer; callers treat a failure here as "chat unavailable", not as
// a boot failure.
func ConnectMongo() (*mongo.Database, context.CancelFunc, error) {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		return nil, nil, fmt.Errorf("MONGODB_URI is not set")
	}

	uri, err := url.Parse(mongoURI)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid MONGODB_URI: %w", err)
	}

	dbName := strings.TrimPrefix(uri.Path, "/")
	if dbName == "" {
		dbName = "lifemon"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		cancel()
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		cancel()
		return nil, nil, err
	}

	return client.Database(dbName), cancel, nil
}
