package pattern

import (
	"container/list"
	"regexp"
	"sync"
)

type cacheEntry struct {
	key string
	re  *regexp.Regexp
}

// regexpCache is a thread-safe LRU of compiled expressions keyed by source.
type regexpCache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
	hits     uint64
	misses   uint64
}

func newRegexpCache(capacity int) *regexpCache {
	return &regexpCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

func (c *regexpCache) get(key string) (*regexp.Regexp, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		c.hits++
		return elem.Value.(*cacheEntry).re, true
	}

	c.misses++
	return nil, false
}

func (c *regexpCache) put(key string, re *regexp.Regexp) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*cacheEntry).re = re
		return
	}

	c.items[key] = c.eviction.PushFront(&cacheEntry{key: key, re: re})

	if c.eviction.Len() > c.capacity {
		// Must be called with lock held.
		if oldest := c.eviction.Back(); oldest != nil {
			c.eviction.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
}

func (c *regexpCache) stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Entries: c.eviction.Len(), Hits: c.hits, Misses: c.misses}
}

func (c *regexpCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.eviction.Init()
}
