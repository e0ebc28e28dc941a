package cache

import (
	"time"

	goCache "github.com/patrickmn/go-cache"
)

const (
	defaultExpireTime = 5 * time.Minute
)

type implementation struct {
	cache *goCache.Cache
}

// Set - set value of key to cache
func (i *implementation) Set(key string, value interface{}) {
	i.cache.Set(key, value, goCache.DefaultExpiration)
}

// Get - get value of key from cache
func (i *implementation) Get(key string) (interface{}, bool) {
	return i.cache.Get(key)
}

// NewCache - new cache, keys expire after expireTime, expired keys are
// cleaned up every two expireTime
// non-positive expireTime means 5 minutes
func NewCache(expireTime time.Duration) Cache {
	if 0 >= expireTime {
		expireTime = defaultExpireTime
	}

	return &implementation{
		cache: goCache.New(expireTime, 2*expireTime),
	}
}
