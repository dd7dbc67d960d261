package common

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
)

// CacheService is the in-memory cache used for leaderboard results
type CacheService struct {
	cache  *cache.Cache
	hits   prometheus.Counter
	misses prometheus.Counter
}

func NewCacheService(defaultExpirationSeconds, cleanUpIntervalSeconds int) *CacheService {

	defaultExpiration := time.Duration(defaultExpirationSeconds) * time.Second
	cleanUpInterval := time.Duration(cleanUpIntervalSeconds) * time.Second
	c := cache.New(defaultExpiration, cleanUpInterval)
	return &CacheService{cache: c}
}

// InstrumentWith attaches hit/miss counters. Counters stay nil in tests
// that don't care about metrics.
func (cs *CacheService) InstrumentWith(hits, misses prometheus.Counter) {
	cs.hits = hits
	cs.misses = misses
}

func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	cs.cache.Set(key, value, duration)
}

func (cs *CacheService) Get(key string) (interface{}, bool) {
	return cs.cache.Get(key)
}

func (cs *CacheService) Delete(key string) {
	cs.cache.Delete(key)
}

func (cs *CacheService) GetOrSet(
	key string,
	duration time.Duration,
	loader func() (any, error)) (interface{}, error) {
	if val, found := cs.Get(key); found {
		if cs.hits != nil {
			cs.hits.Inc()
		}
		return val, nil
	}
	if cs.misses != nil {
		cs.misses.Inc()
	}

	val, err := loader()
	if err != nil {
		return nil, err
	}

	cs.Set(key, val, duration)
	return val, nil
}
