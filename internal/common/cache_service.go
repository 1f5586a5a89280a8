package common

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/metrics"
)

// CacheService is the in-memory cache implementation, suitable for a single
// instance deployment. Use RedisCacheService when running more than one.
type CacheService struct {
	cache   *cache.Cache
	group   singleflight.Group
	metrics *metrics.MetricsRegistry
}

// Ensure CacheService implements CacheInterface
var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpirationSeconds, cleanUpIntervalSeconds int) *CacheService {
	defaultExpiration := time.Duration(defaultExpirationSeconds) * time.Second
	cleanUpInterval := time.Duration(cleanUpIntervalSeconds) * time.Second
	c := cache.New(defaultExpiration, cleanUpInterval)
	return &CacheService{cache: c}
}

// WithMetrics attaches hit/miss counters and returns the service.
func (cs *CacheService) WithMetrics(reg *metrics.MetricsRegistry) *CacheService {
	cs.metrics = reg
	return cs
}

func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	cs.cache.Set(key, value, duration)
}

func (cs *CacheService) Get(key string) (interface{}, bool) {
	val, found := cs.cache.Get(key)
	recordCacheAccess(cs.metrics, key, found)
	return val, found
}

func (cs *CacheService) Delete(key string) {
	cs.cache.Delete(key)
}

// GetOrSet returns the cached value for key, loading it on a miss.
// Concurrent misses on the same key share one loader call.
func (cs *CacheService) GetOrSet(
	key string,
	duration time.Duration,
	loader func() (any, error)) (interface{}, error) {
	if val, found := cs.Get(key); found {
		return val, nil
	}

	val, err, _ := cs.group.Do(key, func() (any, error) {
		if val, found := cs.cache.Get(key); found {
			return val, nil
		}
		val, err := loader()
		if err != nil {
			return nil, err
		}
		cs.Set(key, val, duration)
		return val, nil
	})
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Close closes the cache (no-op for in-memory cache)
func (cs *CacheService) Close() error {
	return nil
}

var cachePrefixes = []constants.CachePrefix{
	constants.CachePrefixAvailability,
	constants.CachePrefixMTTR,
	constants.CachePrefixAlertRead,
	constants.CachePrefixAlerts,
	constants.CachePrefixTechLoad,
}

// cacheKeyPattern buckets a key by its known prefix so the counters stay
// low-cardinality.
func cacheKeyPattern(key string) string {
	for _, p := range cachePrefixes {
		if strings.HasPrefix(key, string(p)) {
			return string(p)
		}
	}
	return "other"
}

func recordCacheAccess(reg *metrics.MetricsRegistry, key string, hit bool) {
	if reg == nil {
		return
	}
	if hit {
		reg.CacheHitsTotal.WithLabelValues(cacheKeyPattern(key)).Inc()
	} else {
		reg.CacheMissesTotal.WithLabelValues(cacheKeyPattern(key)).Inc()
	}
}
