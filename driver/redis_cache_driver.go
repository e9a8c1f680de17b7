package driver

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSignalCacheDriver caches signal-store reads (currently followee
// sets) in Redis with a short TTL. All failures are reported as driver
// errors; callers treat them as cache misses.
type RedisSignalCacheDriver struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSignalCacheDriver(client *redis.Client, ttl time.Duration) *RedisSignalCacheDriver {
	return &RedisSignalCacheDriver{
		client: client,
		ttl:    ttl,
	}
}

// GetStringList returns the cached list for key. The second return value
// reports whether the key was present.
func (d *RedisSignalCacheDriver) GetStringList(ctx context.Context, key string) ([]string, bool, error) {
	raw, err := d.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, &DriverError{Op: "GetStringList", Err: err.Error()}
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, false, &DriverError{Op: "GetStringList", Err: "corrupt cache entry: " + err.Error()}
	}
	return values, true, nil
}

// SetStringList stores the list under key with the configured TTL.
func (d *RedisSignalCacheDriver) SetStringList(ctx context.Context, key string, values []string) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return &DriverError{Op: "SetStringList", Err: err.Error()}
	}
	if err := d.client.Set(ctx, key, raw, d.ttl).Err(); err != nil {
		return &DriverError{Op: "SetStringList", Err: err.Error()}
	}
	return nil
}
