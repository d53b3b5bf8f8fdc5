package query

import (
	"container/list"

	"github.com/zztool/zz/ast"
)

// cacheKey identifies one cached query result: which AST generation it
// was computed against and which compiled query produced it (spec §4.6:
// "caching matches by (AST-generation, query-id) in an LRU").
type cacheKey struct {
	generation uint32
	queryID    string
}

type cacheEntry struct {
	key     cacheKey
	matches []ast.Ptr
}

// Cache is a fixed-capacity LRU over query results. Recency is the
// order of a container/list, with MoveToFront on every Get and Put of an
// existing key; no clock or counter is kept (the core has no access to a
// real nanosecond clock per spec §5).
type Cache struct {
	capacity int
	order    *list.List
	index    map[cacheKey]*list.Element
}

// NewCache returns a Cache holding at most capacity entries.
func NewCache(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[cacheKey]*list.Element),
	}
}

// Get returns the cached matches for (generation, queryID), touching the
// entry's recency, and whether it was present.
func (c *Cache) Get(generation uint32, queryID string) ([]ast.Ptr, bool) {
	key := cacheKey{generation: generation, queryID: queryID}
	el, ok := c.index[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).matches, true
}

// Put stores matches for (generation, queryID), evicting the
// least-recently-used entry if the cache is at capacity.
func (c *Cache) Put(generation uint32, queryID string, matches []ast.Ptr) {
	key := cacheKey{generation: generation, queryID: queryID}
	if el, ok := c.index[key]; ok {
		c.order.MoveToFront(el)
		el.Value.(*cacheEntry).matches = matches
		return
	}

	entry := &cacheEntry{key: key, matches: matches}
	el := c.order.PushFront(entry)
	c.index[key] = el

	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.index, oldest.Value.(*cacheEntry).key)
	}
}

// InvalidateOlderThan drops every cached entry for generations older
// than current, called after an edit bumps the AST's generation (spec
// §4.10 step 5: "invalidate ... query caches keyed by overlapping
// spans", approximated here at generation granularity since span-level
// invalidation would require tracking each query's node set).
func (c *Cache) InvalidateOlderThan(current uint32) {
	for key, el := range c.index {
		if key.generation < current {
			c.order.Remove(el)
			delete(c.index, key)
		}
	}
}
