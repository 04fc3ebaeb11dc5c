package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/bruinrent/internal/domain"
	"github.com/spec-kit/bruinrent/internal/events"
)

const listingsKey = "listings:all"

// ListingCache keeps a short-lived copy of the all-listings page in Redis.
// It is strictly best-effort: any cache failure falls through to Postgres.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewListingCache builds the cache. A nil client disables it.
func NewListingCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ListingCache {
	return &ListingCache{client: client, ttl: ttl, logger: logger}
}

// RegisterInvalidation subscribes cache invalidation to listing mutations.
func (c *ListingCache) RegisterInvalidation(dispatcher events.Dispatcher) {
	if c == nil || dispatcher == nil {
		return
	}
	handler := func(ctx context.Context, _ events.Event) error {
		c.Invalidate(ctx)
		return nil
	}
	dispatcher.Subscribe(events.EventListingCreated, handler)
	dispatcher.Subscribe(events.EventListingUpdated, handler)
	dispatcher.Subscribe(events.EventListingDeleted, handler)
}

// GetAll returns the cached listings, or ok=false on miss or cache failure.
func (c *ListingCache) GetAll(ctx context.Context) ([]domain.ListingWithOwner, bool) {
	if !c.enabled() {
		return nil, false
	}

	raw, err := c.client.Get(ctx, listingsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("listing cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var listings []domain.ListingWithOwner
	if err := json.Unmarshal(raw, &listings); err != nil {
		c.logger.Warn("listing cache decode failed", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}
	return listings, true
}

// SetAll stores the listings snapshot with the configured TTL.
func (c *ListingCache) SetAll(ctx context.Context, listings []domain.ListingWithOwner) {
	if !c.enabled() {
		return
	}

	raw, err := json.Marshal(listings)
	if err != nil {
		c.logger.Warn("listing cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, listingsKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("listing cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached snapshot.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.client.Del(ctx, listingsKey).Err(); err != nil {
		c.logger.Warn("listing cache invalidation failed", zap.Error(err))
	}
}

func (c *ListingCache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}
