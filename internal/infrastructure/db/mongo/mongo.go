// Package mongo backs the credential store with a single users collection.
//
// Connect is the one entry point: it dials, verifies connectivity and
// prepares the users collection before the service accepts requests.
// Registration depends on a unique index on username to make Create an
// atomic insert-if-absent, so the index is part of the bootstrap rather
// than a separate migration step.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Config carries the connection settings for the user store.
type Config struct {
	URI      string
	Database string
	// Timeout bounds the whole bootstrap: dial, ping and index creation.
	// Zero means connectTimeout.
	Timeout time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return connectTimeout
	}
	return c.Timeout
}

// Connect dials MongoDB and readies the users collection. The client is
// torn down again on any bootstrap failure, so the caller never receives
// a half-initialised store.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	bootCtx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	client, err := mongo.Connect(bootCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(bootCtx, nil); err != nil {
		_ = client.Disconnect(bootCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	if err := ensureUserIndexes(bootCtx, db); err != nil {
		_ = client.Disconnect(bootCtx)
		return nil, nil, err
	}

	return client, db, nil
}
