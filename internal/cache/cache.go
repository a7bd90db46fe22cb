package cache

import (
	"strconv"
	"strings"
	"sync"

	"tigerrentals-client/internal/logger"
)

// Collection names a cached family of backend reads
type Collection string

const (
	Categories Collection = "categories"
	Items      Collection = "items"
	MyItems    Collection = "my-items"
	MyRentals  Collection = "my-rentals"
	Messages   Collection = "messages"
	Earnings   Collection = "earnings"
)

// Key identifies one cached value. Sub distinguishes entries inside a
// collection, e.g. a rental id for messages or a filter for items.
type Key struct {
	Collection Collection
	Sub        string
}

func (k Key) String() string {
	if k.Sub == "" {
		return string(k.Collection)
	}
	return string(k.Collection) + ":" + k.Sub
}

func KeyOf(c Collection) Key {
	return Key{Collection: c}
}

// MessagesFor is the key of one rental's conversation
func MessagesFor(rentalID int64) Key {
	return Key{Collection: Messages, Sub: strconv.FormatInt(rentalID, 10)}
}

// Cache holds backend reads for the lifetime of a session. Entries never
// expire on their own; they are dropped by mutating operations per the
// Invalidates table, or all at once when the session changes.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]any
}

func New() *Cache {
	return &Cache{entries: make(map[Key]any)}
}

func (c *Cache) Get(k Key) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[k]
	return v, ok
}

func (c *Cache) Put(k Key, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[k] = v
}

// Invalidate drops keys. A key with an empty Sub drops the whole
// collection.
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		if k.Sub != "" {
			delete(c.entries, k)
			continue
		}
		for existing := range c.entries {
			if existing.Collection == k.Collection {
				delete(c.entries, existing)
			}
		}
	}
	if len(keys) > 0 {
		logger.Debug("Cache invalidated", "keys", joinKeys(keys))
	}
}

// Purge drops everything
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]any)
	logger.Debug("Cache purged")
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Typed reads a cached value of type T. A missing entry or one of another
// type reports false.
func Typed[T any](c *Cache, k Key) (T, bool) {
	var zero T
	v, ok := c.Get(k)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

func joinKeys(keys []Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, ",")
}
