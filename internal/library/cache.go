package library

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// trackCache keeps recent Track(id) lookups. A nil cache is a no-op.
//
// The cache only sees writes made through its own Store. Writes from another
// process, or a lookup racing an update, leave a stale row for at most ttl.
type trackCache struct {
	lru *expirable.LRU[uint, Track]
}

func newTrackCache(size int, ttl time.Duration) *trackCache {
	if size <= 0 {
		return nil
	}
	return &trackCache{lru: expirable.NewLRU[uint, Track](size, nil, ttl)}
}

func (c *trackCache) get(id uint) (Track, bool) {
	if c == nil {
		return Track{}, false
	}
	return c.lru.Get(id)
}

func (c *trackCache) add(t Track) {
	if c == nil {
		return
	}
	c.lru.Add(t.ID, t)
}

func (c *trackCache) evict(id uint) {
	if c == nil {
		return
	}
	c.lru.Remove(id)
}

func (c *trackCache) purge() {
	if c == nil {
		return
	}
	c.lru.Purge()
}
