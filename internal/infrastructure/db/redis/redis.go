// Package redis holds the Redis client bootstrap.
//
// The service keeps no session or token state in Redis — tokens are
// self-contained and never revoked server-side. The client's only role is
// the readiness probe, which reports the dependency's health alongside
// MongoDB's.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Config carries the connection settings for the readiness dependency.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds the startup ping. Zero means pingTimeout.
	Timeout time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return pingTimeout
	}
	return c.Timeout
}

// Connect builds the client and pings it once, so a misconfigured address
// surfaces at startup rather than on the first readiness check.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
