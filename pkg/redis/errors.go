package redis

import (
	"errors"
	"time"
)

// DefaultConnectTimeout bounds the initial connection probe.
const DefaultConnectTimeout = 5 * time.Second

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: port must be between 1 and 65535")
)
