package i18n

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/soundhaus/locale-service/internal/metrics"
)

// resolutionCache is a thread-safe LRU cache with TTL expiration in front
// of the tree walk. It stores post-fallback templates (pre-interpolation)
// keyed by locale and dotted key, and is cleared wholesale on locale switch
// and bundle reload.
type resolutionCache struct {
	mu       sync.RWMutex
	capacity int
	ttl      time.Duration
	items    map[string]*cacheEntry
	head     *cacheEntry
	tail     *cacheEntry
	stopCh   chan struct{}
	stopOnce sync.Once
	hits     int64
	misses   int64
}

// cacheEntry is one cached template with expiration tracking.
type cacheEntry struct {
	key       string
	template  string
	source    string
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// cacheKey builds the cache key for a locale and dotted key. The NUL
// separator cannot appear in either part.
func cacheKey(locale, key string) string {
	return locale + "\x00" + key
}

// newResolutionCache creates the cache and starts its background cleanup.
func newResolutionCache(capacity int, ttl time.Duration) *resolutionCache {
	if capacity < 1 {
		capacity = 1
	}
	c := &resolutionCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get returns the cached template and source for a key if present and fresh.
func (c *resolutionCache) Get(locale, key string) (string, string, bool) {
	k := cacheKey(locale, key)

	c.mu.RLock()
	entry, ok := c.items[k]
	c.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return "", "", false
	}

	if time.Now().After(entry.expiresAt) {
		c.removeExpired(entry)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return "", "", false
	}

	c.mu.Lock()
	c.moveToFront(entry)
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.template, entry.source, true
}

// Set stores a resolved template. The least recently used entry is evicted
// at capacity.
func (c *resolutionCache) Set(locale, key, template, source string) {
	k := cacheKey(locale, key)

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[k]; ok {
		entry.template = template
		entry.source = source
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry{
		key:       k,
		template:  template,
		source:    source,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[k] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeTail()
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// Clear drops every entry. Called on locale switch and bundle reload.
func (c *resolutionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheEntry, c.capacity)
	c.head = nil
	c.tail = nil
	metrics.RecordCacheOperation("clear", "success")
}

// Stop shuts down the background cleanup goroutine.
func (c *resolutionCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// Stats returns hit and miss counts plus current size.
func (c *resolutionCache) Stats() (hits, misses int64, size int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses), len(c.items)
}

// startCleanup periodically removes expired entries when the cache is
// mostly full.
func (c *resolutionCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.RLock()
			shouldCleanup := len(c.items) > (c.capacity * 80 / 100)
			c.mu.RUnlock()
			if shouldCleanup {
				c.cleanup()
			}
		case <-c.stopCh:
			return
		}
	}
}

func (c *resolutionCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
}

// removeExpired drops an entry observed as expired outside the write lock.
// The key may have been repopulated in between, so removal requires the map
// to still hold this exact entry.
func (c *resolutionCache) removeExpired(entry *cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if current, ok := c.items[entry.key]; ok && current == entry {
		c.removeEntry(entry)
	}
}

func (c *resolutionCache) removeEntry(entry *cacheEntry) {
	delete(c.items, entry.key)
	c.remove(entry)
}

func (c *resolutionCache) moveToFront(entry *cacheEntry) {
	if entry == c.head {
		return
	}
	c.remove(entry)
	c.addToFront(entry)
}

func (c *resolutionCache) addToFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *resolutionCache) remove(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
}

func (c *resolutionCache) removeTail() {
	if c.tail == nil {
		return
	}
	delete(c.items, c.tail.key)
	c.remove(c.tail)
}
