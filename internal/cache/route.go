package cache

import (
	"sync"

	"github.com/atharv3903/citygraph/internal/model"
)

// RouteKey is an ordered (Src, Dst) pair: A->B and B->A are separate entries.
type RouteKey struct{ Src, Dst string }

// Stats is a snapshot of cache counters.
type Stats struct {
	Entries   int `json:"entries"`
	Gets      int `json:"gets"`
	Hits      int `json:"hits"`
	Puts      int `json:"puts"`
	Evictions int `json:"evictions"`
}

// RouteCache memoizes path results for the lifetime of a graph.
// It's safe for concurrent use.
type RouteCache struct {
	mu sync.Mutex
	c  *lru[RouteKey, model.PathResult]
}

// NewRouteCache returns a cache that never evicts.
func NewRouteCache() *RouteCache {
	return NewRouteCacheWithCap(0)
}

// NewRouteCacheWithCap bounds the cache to capacity entries, dropping the
// least recently used. capacity <= 0 means unbounded.
func NewRouteCacheWithCap(capacity int) *RouteCache {
	return &RouteCache{c: newLRU[RouteKey, model.PathResult](capacity)}
}

func (c *RouteCache) Get(k RouteKey) (model.PathResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.get(k)
}

func (c *RouteCache) Put(k RouteKey, r model.PathResult) {
	c.mu.Lock()
	c.c.put(k, r)
	c.mu.Unlock()
}

func (c *RouteCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.len()
}

// Clear fully resets the cache and stats.
func (c *RouteCache) Clear() {
	c.mu.Lock()
	c.c.clear()
	c.mu.Unlock()
}

func (c *RouteCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Entries:   c.c.len(),
		Gets:      c.c.gets,
		Hits:      c.c.hits,
		Puts:      c.c.puts,
		Evictions: c.c.evictions,
	}
}
