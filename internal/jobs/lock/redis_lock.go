package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefixJobLock = "waste:jobs:lock:"

// releaseScript deletes the key only while it still carries the caller's
// owner token
var releaseScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`)

// RedisLocker coordinates job runs across instances sharing one Redis
type RedisLocker struct {
	redis *redis.Client
}

// NewRedisLocker creates a new RedisLocker
func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{redis: client}
}

// Acquire implements Locker with SET NX PX
func (r *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (*Lock, error) {
	lockKey := keyPrefixJobLock + key
	owner := uuid.NewString()

	acquired, err := r.redis.SetNX(ctx, lockKey, owner, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		return nil, ErrLockNotAcquired
	}

	return &Lock{
		key:   key,
		owner: owner,
		release: func(ctx context.Context) error {
			if err := releaseScript.Run(ctx, r.redis, []string{lockKey}, owner).Err(); err != nil && err != redis.Nil {
				return fmt.Errorf("failed to release lock: %w", err)
			}
			return nil
		},
	}, nil
}
