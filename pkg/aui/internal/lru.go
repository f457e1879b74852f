package internal

const defaultMaxCacheSize = 64

// LRU is a small least-recently-used cache. Evicted values are handed to
// the release callback so native resources (textures, surfaces) are freed.
type LRU[K comparable, V any] struct {
	values  map[K]V
	order   []K // tracks use order, most recent last
	maxSize int
	release func(V)
}

func NewLRU[K comparable, V any](release func(V)) *LRU[K, V] {
	return NewLRUWithSize[K, V](defaultMaxCacheSize, release)
}

func NewLRUWithSize[K comparable, V any](maxSize int, release func(V)) *LRU[K, V] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &LRU[K, V]{
		values:  make(map[K]V),
		order:   make([]K, 0, maxSize),
		maxSize: maxSize,
		release: release,
	}
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	v, ok := c.values[key]
	if ok {
		c.moveToEnd(key)
	}
	return v, ok
}

func (c *LRU[K, V]) Set(key K, value V) {
	if old, exists := c.values[key]; exists {
		c.values[key] = value
		c.moveToEnd(key)
		if c.release != nil {
			c.release(old)
		}
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.values[key] = value
	c.order = append(c.order, key)
}

func (c *LRU[K, V]) Len() int {
	return len(c.order)
}

func (c *LRU[K, V]) moveToEnd(key K) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *LRU[K, V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if v, exists := c.values[oldest]; exists {
		delete(c.values, oldest)
		if c.release != nil {
			c.release(v)
		}
	}
}

// Purge releases every cached value.
func (c *LRU[K, V]) Purge() {
	if c.release != nil {
		for _, v := range c.values {
			c.release(v)
		}
	}
	c.values = make(map[K]V)
	c.order = c.order[:0]
}
