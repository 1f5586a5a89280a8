package common

import "time"

// CacheInterface is what the service layer sees of a cache: the in-memory
// and Redis implementations are interchangeable behind it, selected at
// startup. Derived views (availability, MTTR, tech loads) and alert read
// markers all go through here.
type CacheInterface interface {
	// Set stores a value under key for the given duration.
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the value for key and whether it was present.
	Get(key string) (interface{}, bool)

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string)

	// GetOrSet returns the cached value, running loader and caching its
	// result on a miss.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases backend connections where the implementation holds any.
	Close() error
}
