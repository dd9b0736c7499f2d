package match

import (
	"container/list"
	"sync"
)

// Cache provides LRU caching of query results. It is safe for concurrent
// use.
type Cache struct {
	mu      sync.RWMutex
	maxSize int
	items   map[string]*list.Element
	lru     *list.List
}

// cacheEntry holds one cached query result.
type cacheEntry struct {
	query   string
	results []Match
}

// NewCache creates an LRU cache holding at most maxSize queries.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &Cache{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// Get retrieves cached results for a query. Returns nil if not found.
func (c *Cache) Get(query string) []Match {
	// Read lock first: misses are the common case.
	c.mu.RLock()
	_, ok := c.items[query]
	c.mu.RUnlock()
	if !ok {
		return nil
	}

	// Hit: write lock to update LRU order.
	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check in case the entry was evicted between locks.
	elem, ok := c.items[query]
	if !ok {
		return nil
	}
	c.lru.MoveToFront(elem)

	entry := elem.Value.(*cacheEntry) //nolint:errcheck // list only contains *cacheEntry
	return copyMatches(entry.results)
}

// Set stores results for a query.
func (c *Cache) Set(query string, results []Match) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[query]; ok {
		c.lru.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry) //nolint:errcheck // list only contains *cacheEntry
		entry.results = copyMatches(results)
		return
	}

	if c.lru.Len() >= c.maxSize {
		c.evictOldest()
	}

	elem := c.lru.PushFront(&cacheEntry{
		query:   query,
		results: copyMatches(results),
	})
	c.items[query] = elem
}

// Delete removes a query from the cache.
func (c *Cache) Delete(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[query]; ok {
		c.removeElement(elem)
	}
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.lru.Init()
}

// Len returns the number of cached queries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lru.Len()
}

// evictOldest removes the least recently used entry. Lock must be held.
func (c *Cache) evictOldest() {
	if elem := c.lru.Back(); elem != nil {
		c.removeElement(elem)
	}
}

// removeElement removes an element. Lock must be held.
func (c *Cache) removeElement(elem *list.Element) {
	c.lru.Remove(elem)
	entry := elem.Value.(*cacheEntry) //nolint:errcheck // list only contains *cacheEntry
	delete(c.items, entry.query)
}

// copyMatches copies results so callers and the cache never share a slice.
// The copy is non-nil even when results is empty, so a cached empty result
// is distinguishable from a miss.
func copyMatches(results []Match) []Match {
	copied := make([]Match, len(results))
	copy(copied, results)
	return copied
}
