// Package cache is a bounded result cache with a freshness window. The
// projection service keys it by month; stale entries are dropped lazily on
// lookup.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// LRU evicts the least recently used entry once capacity is exceeded.
type LRU[V any] struct {
	mu    sync.Mutex
	cap   int
	ttl   time.Duration
	index map[string]*list.Element
	order *list.List // front is most recently used
}

type entry[V any] struct {
	key     string
	value   V
	staleAt time.Time
}

// New creates a cache holding up to capacity entries, each fresh for ttl.
func New[V any](capacity int, ttl time.Duration) *LRU[V] {
	return &LRU[V]{
		cap:   capacity,
		ttl:   ttl,
		index: make(map[string]*list.Element),
		order: list.New(),
	}
}

// Get returns the fresh value stored under key, if any. A stale entry is
// removed and reported as a miss.
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.index[key]
	if !ok {
		return zero, false
	}
	e := el.Value.(*entry[V])
	if time.Now().After(e.staleAt) {
		c.evict(el)
		return zero, false
	}
	c.order.MoveToFront(el)
	return e.value, true
}

// Set stores value under key, replacing any previous entry and resetting its
// freshness window.
func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := &entry[V]{key: key, value: value, staleAt: time.Now().Add(c.ttl)}
	if el, ok := c.index[key]; ok {
		el.Value = e
		c.order.MoveToFront(el)
		return
	}

	c.index[key] = c.order.PushFront(e)
	if c.order.Len() > c.cap {
		c.evict(c.order.Back())
	}
}

// Delete removes the entry stored under key, if any.
func (c *LRU[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.evict(el)
	}
}

// Purge empties the cache. It stays usable afterwards.
func (c *LRU[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.index = make(map[string]*list.Element)
	c.order.Init()
}

// Len returns the number of stored entries, stale ones included.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

func (c *LRU[V]) evict(el *list.Element) {
	delete(c.index, el.Value.(*entry[V]).key)
	c.order.Remove(el)
}
