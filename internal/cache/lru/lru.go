package lru

import (
	"container/list"
	"sync"
	"time"
)

// Cache is a size-bounded LRU keyed by string. Entries carry an optional
// TTL; expired entries are dropped lazily on access and on insert.
type Cache struct {
	mu        sync.RWMutex
	maxBytes  int64
	usedBytes int64
	ttl       int64 // seconds, 0 = never expires
	ll        *list.List
	cache     map[string]*list.Element
	OnEvicted func(key string, value Value)
}

// Value is anything the cache can account for by size.
type Value interface {
	Len() int
}

type entry struct {
	key      string
	value    Value
	createAt int64
}

// NewCache creates a cache bounded to maxBytes. Entries older than ttl
// are treated as absent; ttl <= 0 disables expiry.
func NewCache(maxBytes int64, ttl time.Duration, onEvicted func(string, Value)) *Cache {
	return &Cache{
		maxBytes:  maxBytes,
		ttl:       int64(ttl / time.Second),
		ll:        list.New(),
		cache:     make(map[string]*list.Element),
		OnEvicted: onEvicted,
	}
}

// Get returns the cached value for key, refreshing its recency.
func (c *Cache) Get(key string) (Value, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.cache[key]
	if !ok {
		return nil, false
	}
	ent := ele.Value.(*entry)
	if c.expired(ent, time.Now().Unix()) {
		c.removeElement(ele)
		return nil, false
	}
	c.ll.MoveToFront(ele)
	return ent.value, true
}

// Add inserts or replaces the value for key, evicting least recently
// used entries until the cache fits its byte budget again.
func (c *Cache) Add(key string, value Value) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().Unix()
	if ele, ok := c.cache[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry)
		c.usedBytes += int64(value.Len()) - int64(ent.value.Len())
		ent.value = value
		ent.createAt = now
	} else {
		ele := c.ll.PushFront(&entry{key: key, value: value, createAt: now})
		c.cache[key] = ele
		c.usedBytes += int64(len(key)) + int64(value.Len())
	}

	c.removeExpired(now)
	for c.maxBytes > 0 && c.usedBytes > c.maxBytes {
		c.removeOldest()
	}
}

// Remove drops key from the cache if present.
func (c *Cache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.cache[key]; ok {
		c.removeElement(ele)
	}
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ll.Len()
}

// Clear drops every entry without firing eviction callbacks.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	c.cache = make(map[string]*list.Element)
	c.usedBytes = 0
}

func (c *Cache) expired(ent *entry, now int64) bool {
	return c.ttl > 0 && now > ent.createAt+c.ttl
}

func (c *Cache) removeOldest() {
	if ele := c.ll.Back(); ele != nil {
		c.removeElement(ele)
	}
}

func (c *Cache) removeElement(ele *list.Element) {
	c.ll.Remove(ele)
	ent := ele.Value.(*entry)
	delete(c.cache, ent.key)
	c.usedBytes -= int64(len(ent.key)) + int64(ent.value.Len())

	if c.OnEvicted != nil {
		c.OnEvicted(ent.key, ent.value)
	}
}

// removeExpired walks from the LRU end; entries are ordered by recency,
// not age, so stop at the first live one to keep inserts cheap.
func (c *Cache) removeExpired(now int64) {
	for ele := c.ll.Back(); ele != nil; {
		ent := ele.Value.(*entry)
		if !c.expired(ent, now) {
			break
		}
		prev := ele.Prev()
		c.removeElement(ele)
		ele = prev
	}
}
