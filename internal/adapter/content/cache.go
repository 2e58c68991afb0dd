package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

const (
	cacheKeyPrefix  = "cache:content-plan:"
	DefaultCacheTTL = time.Hour
)

type cachedPlan struct {
	Ideas    []string `json:"ideas"`
	Captions []string `json:"captions"`
	Hashtags []string `json:"hashtags"`
	Outline  string   `json:"outline"`
}

type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ ports.ContentCache = (*RedisCache)(nil)

func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, topic string) (domain.ContentPlan, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(topic)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ContentPlan{}, false, nil
	}
	if err != nil {
		return domain.ContentPlan{}, false, err
	}

	var cached cachedPlan
	if err := json.Unmarshal(data, &cached); err != nil {
		return domain.ContentPlan{}, false, fmt.Errorf("decode cached plan: %w", err)
	}
	return domain.ContentPlan{
		Ideas:    cached.Ideas,
		Captions: cached.Captions,
		Hashtags: cached.Hashtags,
		Outline:  cached.Outline,
	}, true, nil
}

func (c *RedisCache) Set(ctx context.Context, topic string, plan domain.ContentPlan) error {
	data, err := json.Marshal(cachedPlan{
		Ideas:    plan.Ideas,
		Captions: plan.Captions,
		Hashtags: plan.Hashtags,
		Outline:  plan.Outline,
	})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(topic), data, c.ttl).Err()
}

func cacheKey(topic string) string {
	return cacheKeyPrefix + strings.ToLower(strings.Join(strings.Fields(topic), " "))
}
