package repository

import "errors"

// ErrCacheMiss is returned when no payload exists under the key.
var ErrCacheMiss = errors.New("report cache miss")
