// README: Read-through Redis cache for geocoding results. Cache failures are
// never fatal; a miss or a Redis error both fall through to the live service.
package geocode

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "geocode:q:"

type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{redis: rdb, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, query string) ([]Candidate, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	val, err := c.redis.Get(ctx, cacheKey(query)).Result()
	if err != nil {
		return nil, false
	}
	var candidates []Candidate
	if err := json.Unmarshal([]byte(val), &candidates); err != nil {
		return nil, false
	}
	return candidates, true
}

func (c *Cache) Set(ctx context.Context, query string, candidates []Candidate) {
	if c == nil || c.redis == nil {
		return
	}
	data, err := json.Marshal(candidates)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, cacheKey(query), data, c.ttl).Err()
}

func cacheKey(query string) string {
	return cacheKeyPrefix + strings.ToLower(strings.TrimSpace(query))
}
