package repository

import "context"

//go:generate mockery --name Cache
type Cache interface {
	// GetFresh returns the cached payload while it is within its TTL.
	GetFresh(ctx context.Context, key string) ([]byte, error)
	// GetLastGood returns the most recent successful payload regardless of
	// age. Used to serve stale data when the upstream is down.
	GetLastGood(ctx context.Context, key string) ([]byte, error)
	// Save stores a successful payload under both the fresh and last-good
	// keys.
	Save(ctx context.Context, key string, payload []byte) error
}
