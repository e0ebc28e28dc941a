package cache_test

import (
	"testing"
	"time"

	"github.com/jamieabc/stream-monitor/cache"
	"github.com/stretchr/testify/assert"
)

func TestGetWhenNotExist(t *testing.T) {
	c := cache.NewCache(time.Minute)

	_, found := c.Get("alert")
	assert.False(t, found, "wrong found")
}

func TestGetWhenExist(t *testing.T) {
	c := cache.NewCache(time.Minute)
	c.Set("alert", 1)

	value, found := c.Get("alert")
	assert.True(t, found, "wrong found")
	assert.Equal(t, 1, value, "wrong value")
}

func TestGetWhenExpired(t *testing.T) {
	c := cache.NewCache(20 * time.Millisecond)
	c.Set("alert", 1)

	time.Sleep(50 * time.Millisecond)

	_, found := c.Get("alert")
	assert.False(t, found, "expired key found")
}
