// Package cache provides a bounded in-memory cache for rendered previews.
//
// The cache enforces three limits together: a maximum entry count, a maximum
// aggregate size (the sum of each preview's HTML length) and a time-to-live
// measured from insertion. Expiry is checked lazily on Get; capacity is
// enforced eagerly on Set by evicting least-recently-used entries.
package cache

import (
	"container/list"
	"slices"
	"sync"
	"time"

	"github.com/ukaji3/sheetpreview-go/pkg/preview/models"
)

// Default limits used when Options fields are zero.
const (
	DefaultMaxEntries = 100
	DefaultMaxBytes   = 50 << 20
	DefaultTTL        = 5 * time.Minute
)

// Options configures a Cache.
type Options struct {
	MaxEntries int
	MaxBytes   int64
	TTL        time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Entry is a cached preview with its accounting data.
type Entry struct {
	Key            string
	Value          models.PreviewResult
	SizeBytes      int64
	InsertedAt     time.Time
	LastAccessedAt time.Time
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Entries   int   `json:"entries"`
	Bytes     int64 `json:"bytes"`
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Expired   int64 `json:"expired"`
}

// Cache is a size-, count- and age-bounded LRU cache of previews.
// It is safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	maxBytes   int64
	ttl        time.Duration
	now        func() time.Time

	ll    *list.List // front = most recently used
	items map[string]*list.Element
	bytes int64
	stats Stats
}

// New creates an empty cache.
func New(opts Options) *Cache {
	c := &Cache{
		maxEntries: opts.MaxEntries,
		maxBytes:   opts.MaxBytes,
		ttl:        opts.TTL,
		now:        opts.Now,
		ll:         list.New(),
		items:      make(map[string]*list.Element),
	}
	if c.maxEntries <= 0 {
		c.maxEntries = DefaultMaxEntries
	}
	if c.maxBytes <= 0 {
		c.maxBytes = DefaultMaxBytes
	}
	if c.ttl <= 0 {
		c.ttl = DefaultTTL
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Get returns the preview stored under key. Expired entries are removed and
// reported as a miss. A hit marks the entry as most recently used.
func (c *Cache) Get(key string) (models.PreviewResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return models.PreviewResult{}, false
	}
	e := el.Value.(*Entry)
	now := c.now()
	if now.Sub(e.InsertedAt) >= c.ttl {
		c.removeElement(el)
		c.stats.Expired++
		c.stats.Misses++
		return models.PreviewResult{}, false
	}

	e.LastAccessedAt = now
	c.ll.MoveToFront(el)
	c.stats.Hits++
	return clonePreview(e.Value), true
}

// Set stores value under key, replacing any existing entry, and evicts least
// recently used entries until both capacity limits hold. A value larger than
// the byte limit is not stored. Set reports whether the value was stored.
func (c *Cache) Set(key string, value models.PreviewResult) bool {
	size := int64(value.SizeBytes())

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
	if size > c.maxBytes {
		return false
	}

	for c.ll.Len() > 0 && (c.ll.Len() >= c.maxEntries || c.bytes+size > c.maxBytes) {
		c.removeElement(c.ll.Back())
		c.stats.Evictions++
	}

	now := c.now()
	e := &Entry{
		Key:            key,
		Value:          clonePreview(value),
		SizeBytes:      size,
		InsertedAt:     now,
		LastAccessedAt: now,
	}
	c.items[key] = c.ll.PushFront(e)
	c.bytes += size
	return true
}

// Delete removes key from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
}

// Len returns the number of stored entries, expired ones included until they are read.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Bytes returns the aggregate size of stored entries.
func (c *Cache) Bytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bytes
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = c.ll.Len()
	s.Bytes = c.bytes
	return s
}

// clonePreview copies the slices of v so callers never share them with
// a stored entry.
func clonePreview(v models.PreviewResult) models.PreviewResult {
	v.Metadata.SheetNames = slices.Clone(v.Metadata.SheetNames)
	return v
}

func (c *Cache) removeElement(el *list.Element) {
	e := c.ll.Remove(el).(*Entry)
	delete(c.items, e.Key)
	c.bytes -= e.SizeBytes
}
