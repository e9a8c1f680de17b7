package gateway

import (
	"context"

	"feed-ranker/domain"
)

const followeeCacheKeyPrefix = "feed:followees:"

// SocialGraphDriver reads followee rows.
type SocialGraphDriver interface {
	GetFolloweeIDs(ctx context.Context, userID string) ([]string, error)
}

// SignalCache is an optional read-through cache in front of a signal store.
// Misses and cache errors both fall through to the driver; the cache is
// never load-bearing.
type SignalCache interface {
	GetStringList(ctx context.Context, key string) ([]string, bool, error)
	SetStringList(ctx context.Context, key string, values []string) error
}

// SocialGraphGateway adapts the social graph driver to the SocialGraphStore
// port, with an optional cache for followee sets.
type SocialGraphGateway struct {
	driver SocialGraphDriver
	cache  SignalCache
}

// NewSocialGraphGateway builds the gateway. cache may be nil to disable
// caching.
func NewSocialGraphGateway(driver SocialGraphDriver, cache SignalCache) *SocialGraphGateway {
	return &SocialGraphGateway{
		driver: driver,
		cache:  cache,
	}
}

func (g *SocialGraphGateway) FolloweeIDs(ctx context.Context, userID string) ([]string, error) {
	key := followeeCacheKeyPrefix + userID

	if g.cache != nil {
		if ids, found, err := g.cache.GetStringList(ctx, key); err == nil && found {
			return ids, nil
		}
	}

	ids, err := g.driver.GetFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, &domain.SignalSourceError{
			Source: "social_graph",
			Op:     "FolloweeIDs",
			Err:    err.Error(),
		}
	}

	if g.cache != nil {
		_ = g.cache.SetStringList(ctx, key, ids)
	}
	return ids, nil
}
