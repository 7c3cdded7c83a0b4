package font

import "sync"

// Cache is a process-lifetime map from font resource name to built Entry,
// populated once during a page render's font pre-pass (spec.md §4.1 step
// 5) and treated as read-only for the remainder of the render (spec.md §5
// "Concurrency & resource model").
type Cache struct {
	entries map[string]*Entry
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Entry)}
}

// Get returns the cached entry for name, if any.
func (c *Cache) Get(name string) (*Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Put installs entry under name, overwriting any prior entry.
func (c *Cache) Put(name string, entry *Entry) {
	c.entries[name] = entry
}

// Locking wraps a Cache with a mutex, for callers that render multiple
// pages concurrently against one shared cache (spec.md §5: "may share the
// font cache only if access is externally serialized or the cache is made
// internally synchronized").
type Locking struct {
	mu    sync.RWMutex
	cache *Cache
}

// NewLocking wraps cache (or a fresh one, if nil) with a RWMutex.
func NewLocking(cache *Cache) *Locking {
	if cache == nil {
		cache = NewCache()
	}
	return &Locking{cache: cache}
}

func (l *Locking) Get(name string) (*Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cache.Get(name)
}

func (l *Locking) Put(name string, entry *Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Put(name, entry)
}
