package repository

import (
	"sort"
	"strings"
	"time"
)

// DefaultFreshTTL is how long a cached report counts as fresh when no TTL is
// configured.
const DefaultFreshTTL = 5 * time.Minute

// Options tunes the report cache.
type Options struct {
	FreshTTL time.Duration
}

// CacheKey builds a deterministic cache key from a report family and its
// filter params. Params are sorted so equal filter sets always map to the
// same key; blank values are dropped to match the upstream query.
func CacheKey(family string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(family)
	for _, k := range keys {
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(params[k])
	}
	return b.String()
}
