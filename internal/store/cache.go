// internal/store/cache.go
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"bit-tools/internal/common/logger"
	"bit-tools/internal/models"
)

const cacheKeyPrefix = "bittools:result:"

// Cache stores successful results in Redis, keyed by tool id and inputs.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
	log    logger.Logger
}

// NewCache creates a result cache.
func NewCache(client redis.Cmdable, ttl time.Duration, log logger.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log.With(map[string]interface{}{"component": "cache"}),
	}
}

// Get returns the cached result, or nil on a miss.
func (c *Cache) Get(ctx context.Context, toolID string, inputs map[string]string) (*models.Result, error) {
	raw, err := c.client.Get(ctx, CacheKey(toolID, inputs)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result models.Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		c.log.Warn("discarding malformed cache entry", map[string]interface{}{"tool_id": toolID, "error": err.Error()})
		return nil, nil
	}
	return &result, nil
}

// Set stores a result under the derived key.
func (c *Cache) Set(ctx context.Context, toolID string, inputs map[string]string, result models.Result) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, CacheKey(toolID, inputs), raw, c.ttl).Err()
}

// CacheKey derives a stable key from the tool id and its inputs. Input
// order never affects the key.
func CacheKey(toolID string, inputs map[string]string) string {
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(toolID)
	for _, name := range names {
		b.WriteByte('\n')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(inputs[name])
	}

	sum := sha256.Sum256([]byte(b.String()))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
