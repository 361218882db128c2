package employer

import (
	"context"
	"time"

	"karkhana/utils"

	"github.com/go-redis/redis/v8"
)

// VerificationCache stores GST verification results between the verify and
// register steps. A miss is reported as a nil payload, not an error.
type VerificationCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type redisVerificationCache struct{}

// NewRedisVerificationCache returns the production VerificationCache backed
// by the shared cache client.
func NewRedisVerificationCache() VerificationCache {
	return redisVerificationCache{}
}

func (redisVerificationCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := utils.GetCacheClient().Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (redisVerificationCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return utils.GetCacheClient().Set(ctx, key, value, ttl).Err()
}

func (redisVerificationCache) Del(ctx context.Context, key string) error {
	return utils.GetCacheClient().Del(ctx, key).Err()
}
