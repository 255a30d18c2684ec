package cache

import "time"

// KV is the minimal key-value contract with TTL semantics used to memoize
// widget render payloads. Implementations must be safe for concurrent use by
// multiple goroutines.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}
