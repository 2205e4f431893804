package tmdb

import (
	"sync"
	"time"
)

type cacheEntry struct {
	results []SearchResult
	expires time.Time
}

type cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *cache) get(query string) ([]SearchResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[query]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.results, true
}

func (c *cache) set(query string, results []SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[query] = cacheEntry{
		results: results,
		expires: time.Now().Add(c.ttl),
	}
}
