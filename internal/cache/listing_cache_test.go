package cache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

// Without a Redis client the cache must be a transparent no-op.
func TestDisabledCacheIsTransparent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var nilCache *ListingCache
	if _, ok := nilCache.GetAll(ctx); ok {
		t.Fatalf("nil cache reported a hit")
	}
	nilCache.SetAll(ctx, nil)
	nilCache.Invalidate(ctx)
	nilCache.RegisterInvalidation(nil)

	disabled := NewListingCache(nil, 30*time.Second, zap.NewNop())
	if _, ok := disabled.GetAll(ctx); ok {
		t.Fatalf("cache without client reported a hit")
	}
	disabled.SetAll(ctx, nil)
	disabled.Invalidate(ctx)

	zeroTTL := NewListingCache(nil, 0, zap.NewNop())
	if zeroTTL.enabled() {
		t.Fatalf("zero TTL must disable the cache")
	}
}
