// internal/common/database/redis.go
package database

import (
	"context"
	"fmt"
	"time"

	"bit-tools/internal/common/config"

	"github.com/redis/go-redis/v9"
)

// RedisClient holds the connection backing the result cache.
type RedisClient struct {
	Client *redis.Client
}

// NewRedis builds the Redis client. The connection is lazy; call Ping to
// verify the server is reachable.
func NewRedis(cfg config.RedisConfig) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return &RedisClient{Client: rdb}, nil
}

// Ping verifies the connection.
func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close releases the connection.
func (c *RedisClient) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}

// GetClient exposes the underlying client for the store layer.
func (c *RedisClient) GetClient() *redis.Client {
	return c.Client
}
