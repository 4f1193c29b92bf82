package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/majorleaguegithub/internal/app"
)

const (
	hiringCacheKey  = "hiring"
	statesCacheKey  = "states"
	regionsCacheKey = "regions"

	referenceCacheSize = 3
)

// CachedClient wraps backend client with caching layer.
// Errors are never cached.
type CachedClient struct {
	client            app.BackendClient
	contributorsCache *lru.Cache
	referenceCache    *lru.Cache
	ttl               time.Duration
}

var _ app.BackendClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
// size limits number of cached contributors lists (one per filter).
func NewCachedClient(client app.BackendClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	contributorsCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for contributors: %w", err)
	}
	referenceCache, err := lru.New(referenceCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for reference data: %w", err)
	}

	return &CachedClient{
		client:            client,
		contributorsCache: contributorsCache,
		referenceCache:    referenceCache,
		ttl:               ttl,
	}, nil
}

// Contributors returns ranked contributors matching the filter.
func (c *CachedClient) Contributors(ctx context.Context, filter app.Filter) ([]app.Contributor, error) {
	key := filter.Key()
	if val, ok := c.get(c.contributorsCache, key); ok {
		return val.([]app.Contributor), nil
	}

	contributors, err := c.client.Contributors(ctx, filter)
	if err != nil {
		return contributors, err
	}
	c.add(c.contributorsCache, key, contributors)

	return contributors, nil
}

// Hiring returns hiring manager with job openings.
func (c *CachedClient) Hiring(ctx context.Context) (*app.Hiring, error) {
	if val, ok := c.get(c.referenceCache, hiringCacheKey); ok {
		return val.(*app.Hiring), nil
	}

	hiring, err := c.client.Hiring(ctx)
	if err != nil {
		return hiring, err
	}
	c.add(c.referenceCache, hiringCacheKey, hiring)

	return hiring, nil
}

// States returns all states.
func (c *CachedClient) States(ctx context.Context) ([]app.State, error) {
	if val, ok := c.get(c.referenceCache, statesCacheKey); ok {
		return val.([]app.State), nil
	}

	states, err := c.client.States(ctx)
	if err != nil {
		return states, err
	}
	c.add(c.referenceCache, statesCacheKey, states)

	return states, nil
}

// Regions returns all regions.
func (c *CachedClient) Regions(ctx context.Context) ([]app.Region, error) {
	if val, ok := c.get(c.referenceCache, regionsCacheKey); ok {
		return val.([]app.Region), nil
	}

	regions, err := c.client.Regions(ctx)
	if err != nil {
		return regions, err
	}
	c.add(c.referenceCache, regionsCacheKey, regions)

	return regions, nil
}

func (c *CachedClient) get(cache *lru.Cache, key string) (interface{}, bool) {
	val, ok := cache.Get(key)
	if !ok {
		return nil, false
	}
	entry := val.(cacheEntry)
	if entry.created.Add(c.ttl).Before(time.Now()) {
		return nil, false
	}

	return entry.data, true
}

func (c *CachedClient) add(cache *lru.Cache, key string, data interface{}) {
	cache.Add(key, cacheEntry{
		created: time.Now(),
		data:    data,
	})
}

type cacheEntry struct {
	created time.Time
	data    interface{}
}
