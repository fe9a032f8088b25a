package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

const catalogListKey = "catalog:productos"

// CatalogCache is a Redis-backed read-through cache for the public product
// listing. Cache failures degrade to a database read, they never fail the
// request.
type CatalogCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client, log zerolog.Logger) *CatalogCache {
	return &CatalogCache{client: client, log: log}
}

// GetList returns the cached listing. The boolean reports a hit.
func (c *CatalogCache) GetList(ctx context.Context) ([]domain.Product, bool) {
	raw, err := c.client.Get(ctx, catalogListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("catalog cache read failed")
		}
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache payload corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return products, true
}

// SetList stores the listing with the given TTL.
func (c *CatalogCache) SetList(ctx context.Context, products []domain.Product, ttl time.Duration) {
	raw, err := json.Marshal(products)
	if err != nil {
		c.log.Warn().Err(err).Msg("catalog cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, catalogListKey, raw, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache write failed")
	}
}

// Invalidate drops the cached listing after any catalog mutation.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, catalogListKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
