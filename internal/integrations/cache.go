package integrations

import (
	"slices"
	"sync"
	"time"
)

type cacheEntry struct {
	items      []Integration
	expiresAt  time.Time
	insertedAt time.Time
}

// Cache holds each tenant's integration list in memory. Entries expire after
// ttl and the oldest entry is evicted once maxSize tenants are cached.
type Cache struct {
	mu      sync.Mutex
	items   map[int64]*cacheEntry
	maxSize int
	ttl     time.Duration
	now     func() time.Time
}

func NewCache(maxSize int, ttl time.Duration) *Cache {
	if maxSize < 1 {
		maxSize = 1
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{
		items:   make(map[int64]*cacheEntry, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns a copy of the tenant's cached list.
func (c *Cache) Get(tenantID int64) ([]Integration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[tenantID]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.items, tenantID)
		return nil, false
	}
	return slices.Clone(e.items), true
}

func (c *Cache) Set(tenantID int64, items []Integration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[tenantID]; !ok && len(c.items) >= c.maxSize {
		c.evictOldest()
	}
	now := c.now()
	c.items[tenantID] = &cacheEntry{
		items:      slices.Clone(items),
		expiresAt:  now.Add(c.ttl),
		insertedAt: now,
	}
}

// Swap replaces the cached record with the same id and returns the previous
// value. ok is false when the tenant or the record is not cached.
func (c *Cache) Swap(next Integration) (prev Integration, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, found := c.items[next.TenantID]
	if !found || c.now().After(e.expiresAt) {
		return Integration{}, false
	}
	for i := range e.items {
		if e.items[i].ID == next.ID {
			prev = e.items[i]
			e.items[i] = next
			return prev, true
		}
	}
	return Integration{}, false
}

func (c *Cache) Invalidate(tenantID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, tenantID)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// must hold c.mu
func (c *Cache) evictOldest() {
	var (
		oldestKey  int64
		oldestTime time.Time
		first      = true
	)
	for k, e := range c.items {
		if first || e.insertedAt.Before(oldestTime) {
			oldestKey = k
			oldestTime = e.insertedAt
			first = false
		}
	}
	if !first {
		delete(c.items, oldestKey)
	}
}
