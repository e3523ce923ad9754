package common

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheService keeps markers in process memory. It backs the memory session
// backend, where a single instance runs.
type CacheService struct {
	cache *cache.Cache
}

var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpirationSeconds, cleanUpIntervalSeconds int) *CacheService {
	defaultExpiration := time.Duration(defaultExpirationSeconds) * time.Second
	cleanUpInterval := time.Duration(cleanUpIntervalSeconds) * time.Second
	return &CacheService{cache: cache.New(defaultExpiration, cleanUpInterval)}
}

func (cs *CacheService) SetIfAbsent(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	return cs.cache.Add(key, value, ttl) == nil, nil
}

func (cs *CacheService) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := cs.cache.Get(key)
	if !ok {
		return "", false, nil
	}
	s, _ := v.(string)
	return s, true, nil
}

func (cs *CacheService) Delete(_ context.Context, key string) error {
	cs.cache.Delete(key)
	return nil
}
