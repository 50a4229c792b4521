package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"admin-srv/internal/report/repository"
)

func freshKey(key string) string {
	return fmt.Sprintf("report:fresh:%s", key)
}

func lastGoodKey(key string) string {
	return fmt.Sprintf("report:last:%s", key)
}

// GetFresh returns the payload while its TTL has not elapsed.
func (r *implCache) GetFresh(ctx context.Context, key string) ([]byte, error) {
	data, err := r.redis.Get(ctx, freshKey(key))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "report.repository.redis.GetFresh: Get failed: %v", err)
		return nil, err
	}
	return []byte(data), nil
}

// GetLastGood returns the most recent successful payload regardless of age.
func (r *implCache) GetLastGood(ctx context.Context, key string) ([]byte, error) {
	data, err := r.redis.Get(ctx, lastGoodKey(key))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "report.repository.redis.GetLastGood: Get failed: %v", err)
		return nil, err
	}
	return []byte(data), nil
}

// Save stores the payload under the fresh key with the configured TTL and
// under the last-good key without expiry. A failed fresh write does not stop
// the last-good write.
func (r *implCache) Save(ctx context.Context, key string, payload []byte) error {
	if err := r.redis.Set(ctx, freshKey(key), payload, r.opts.FreshTTL); err != nil {
		r.l.Errorf(ctx, "report.repository.redis.Save: fresh Set failed: %v", err)
	}
	if err := r.redis.Set(ctx, lastGoodKey(key), payload, 0); err != nil {
		r.l.Errorf(ctx, "report.repository.redis.Save: last-good Set failed: %v", err)
		return err
	}
	return nil
}
