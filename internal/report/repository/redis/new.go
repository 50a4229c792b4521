package redis

import (
	"admin-srv/internal/report/repository"
	"admin-srv/pkg/log"
	pkgRedis "admin-srv/pkg/redis"
)

type implCache struct {
	l     log.Logger
	redis pkgRedis.IRedis
	opts  repository.Options
}

// New creates a Redis-backed report cache.
func New(l log.Logger, redisClient pkgRedis.IRedis, opts repository.Options) repository.Cache {
	if opts.FreshTTL <= 0 {
		opts.FreshTTL = repository.DefaultFreshTTL
	}
	return &implCache{
		l:     l,
		redis: redisClient,
		opts:  opts,
	}
}
