package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"creator-dashboard/domain/model"
	"creator-dashboard/domain/repository"
	"creator-dashboard/infrastructure/clients/youtube"
	"creator-dashboard/infrastructure/logger"
	"creator-dashboard/infrastructure/metrics"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// CachedCatalog keeps successful catalog pages in Redis for ttl.
// Concurrent misses for the same query share a single upstream call.
// Failures are never cached and a Redis outage falls through to the catalog.
type CachedCatalog struct {
	next   repository.ICatalog
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

func NewCachedCatalog(next repository.ICatalog, client *redis.Client, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{next: next, client: client, ttl: ttl}
}

func (c *CachedCatalog) MostPopular(ctx context.Context, params model.QueryParameters) ([]model.NormalizedVideo, error) {
	key := youtube.NewCatalogQuery(params).CacheKey()

	if videos, ok := c.get(ctx, key); ok {
		return videos, nil
	}

	// the shared call outlives any single caller; each caller may still give up on ctx
	ch := c.group.DoChan(key, func() (interface{}, error) {
		videos, err := c.next.MostPopular(context.WithoutCancel(ctx), params)
		if err != nil {
			return nil, err
		}
		c.set(key, videos)
		return videos, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]model.NormalizedVideo), nil
	}
}

func (c *CachedCatalog) get(ctx context.Context, key string) ([]model.NormalizedVideo, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheLookup("miss")
		return nil, false
	}
	if err != nil {
		metrics.RecordCacheLookup("error")
		logger.GetLogger().WithField("key", key).WithError(err).Warn("Redis get failed")
		return nil, false
	}

	var videos []model.NormalizedVideo
	if err := json.Unmarshal(data, &videos); err != nil {
		metrics.RecordCacheLookup("error")
		logger.GetLogger().WithField("key", key).WithError(err).Warn("Discarding undecodable cache entry")
		return nil, false
	}
	metrics.RecordCacheLookup("hit")
	return videos, true
}

func (c *CachedCatalog) set(key string, videos []model.NormalizedVideo) {
	data, err := json.Marshal(videos)
	if err != nil {
		logger.GetLogger().WithField("key", key).WithError(err).Warn("Failed to encode cache entry")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("key", key).WithError(err).Warn("Redis set failed")
	}
}
