package introspect

import (
	"reflect"
	"sync"
)

// IntrospectFunc builds the descriptor of one property; see Describe.
type IntrospectFunc func(t reflect.Type, name string) (*Descriptor, error)

type cacheKey struct {
	owner reflect.Type
	name  string
}

type cacheEntry struct {
	desc *Descriptor
	err  error
}

// Cache memoizes descriptors per (owner type, property name), including
// negative results. It is safe for concurrent use: concurrent first lookups
// of one key may both introspect, but every caller observes the single entry
// that won LoadOrStore.
type Cache struct {
	entries    sync.Map // map[cacheKey]*cacheEntry
	introspect IntrospectFunc
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithIntrospector replaces Describe, e.g. to count or stub introspection.
func WithIntrospector(fn IntrospectFunc) CacheOption {
	return func(c *Cache) {
		c.introspect = fn
	}
}

// NewCache creates an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{introspect: Describe}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Default is the process-wide cache. It starts empty and is never cleared.
var Default = NewCache()

// Resolve returns the descriptor of name on owner (pointers are stripped).
// A nil descriptor with a nil error means the property does not exist.
func (c *Cache) Resolve(owner reflect.Type, name string) (*Descriptor, error) {
	key := cacheKey{owner: IndirectType(owner), name: name}

	if e, ok := c.entries.Load(key); ok {
		entry := e.(*cacheEntry)
		return entry.desc, entry.err
	}

	desc, err := c.introspect(key.owner, name)

	e, _ := c.entries.LoadOrStore(key, &cacheEntry{desc: desc, err: err})
	entry := e.(*cacheEntry)

	return entry.desc, entry.err
}

// Len returns the number of cached (type, name) pairs.
func (c *Cache) Len() int {
	n := 0

	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})

	return n
}
