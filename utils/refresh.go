package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"bookflow/models"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"
)

// RefreshFunc exchanges a refresh token for a new pair at the identity
// service.
type RefreshFunc func(ctx context.Context, refreshToken string) (*models.TokenPair, error)

// Refresher de-duplicates concurrent token refreshes. Within one process a
// singleflight group keyed by the refresh-token hash collapses parallel
// callers onto a single identity-service call; across instances a short-TTL
// Redis entry lets siblings reuse a pair that was just minted.
type Refresher struct {
	group   singleflight.Group
	cache   *redis.Client
	refresh RefreshFunc
}

func NewRefresher(cache *redis.Client, fn RefreshFunc) *Refresher {
	return &Refresher{cache: cache, refresh: fn}
}

// Refresh returns a token pair for the given refresh token, reusing an
// in-flight or recently completed refresh where possible.
func (r *Refresher) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	key := HashToken(refreshToken)

	v, err, _ := r.group.Do(key, func() (any, error) {
		if cached, err := r.cache.Get(ctx, RefreshCachePrefix+key).Result(); err == nil {
			var pair models.TokenPair
			if err := json.Unmarshal([]byte(cached), &pair); err == nil {
				return &pair, nil
			}
		}

		pair, err := r.refresh(ctx, refreshToken)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(pair)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal token pair: %w", err)
		}
		if err := r.cache.Set(ctx, RefreshCachePrefix+key, data, RefreshCacheTTL).Err(); err != nil {
			GetLogger().Sugar().Warnf("refresher: failed to cache token pair: %v", err)
		}
		return pair, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.TokenPair), nil
}
