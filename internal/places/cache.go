// README: Redis-backed cache for provider search responses.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const searchKeyPrefix = "places:search:%s"

// Cache stores parsed search results with a TTL so repeated resolutions for
// the same area do not burn provider quota. Misses and redis failures both
// fall through to a live call.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(redis *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: redis, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, p SearchParams) ([]Candidate, bool) {
	val, err := c.redis.Get(ctx, cacheKey(p)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	var results []Candidate
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		return nil, false
	}
	return results, true
}

func (c *Cache) Set(ctx context.Context, p SearchParams, results []Candidate) {
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, cacheKey(p), data, c.ttl).Err()
}

func cacheKey(p SearchParams) string {
	ll := ""
	if p.Lat != nil && p.Lng != nil {
		ll = fmt.Sprintf("%.4f,%.4f", *p.Lat, *p.Lng)
	}
	return fmt.Sprintf(searchKeyPrefix,
		fmt.Sprintf("%s|%s|%s|%d|%s|%d", ll, p.Near, p.Query, p.RadiusM, p.Categories, p.Limit))
}
