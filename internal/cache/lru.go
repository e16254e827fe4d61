package cache

import "container/list"

type entry[K comparable, V any] struct {
	key K
	val V
}

// lru is a map with recency order. A capacity of 0 never evicts.
// It is not safe for concurrent use; callers hold their own lock.
type lru[K comparable, V any] struct {
	m        map[K]*list.Element
	ll       *list.List
	capacity int
	// stats
	puts      int
	gets      int
	hits      int
	evictions int
}

func newLRU[K comparable, V any](capacity int) *lru[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &lru[K, V]{
		m:        make(map[K]*list.Element, capacity),
		ll:       list.New(),
		capacity: capacity,
	}
}

// get updates the LRU position on hit.
func (c *lru[K, V]) get(key K) (V, bool) {
	c.gets++
	if el, ok := c.m[key]; ok {
		c.hits++
		c.ll.MoveToFront(el)
		return el.Value.(entry[K, V]).val, true
	}
	var zero V
	return zero, false
}

// put inserts or replaces key, evicting the least-recently-used entry when
// a bounded cache grows past capacity.
func (c *lru[K, V]) put(key K, v V) {
	c.puts++

	if el, ok := c.m[key]; ok {
		el.Value = entry[K, V]{key: key, val: v}
		c.ll.MoveToFront(el)
		return
	}

	el := c.ll.PushFront(entry[K, V]{key: key, val: v})
	c.m[key] = el

	if c.capacity > 0 && c.ll.Len() > c.capacity {
		tail := c.ll.Back()
		if tail != nil {
			e := tail.Value.(entry[K, V])
			delete(c.m, e.key)
			c.ll.Remove(tail)
			c.evictions++
		}
	}
}

func (c *lru[K, V]) len() int {
	return c.ll.Len()
}

// clear drops every entry and resets the stats.
func (c *lru[K, V]) clear() {
	c.m = make(map[K]*list.Element, c.capacity)
	c.ll.Init()
	c.puts = 0
	c.gets = 0
	c.hits = 0
	c.evictions = 0
}
