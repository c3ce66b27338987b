package domain

import (
	"context"
	"time"
)

// CacheError is a sentinel error raised by Cache implementations.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss reports that a key is absent or expired.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache stores serialized values under string keys. The question store uses it
// to keep immutable quiz questions out of the database hot path.
type Cache interface {
	// Get returns ErrCacheMiss when key is absent.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key. A zero expiration keeps it forever.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Ping(ctx context.Context) error
}
