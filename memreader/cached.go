package memreader

import (
	lru "github.com/hashicorp/golang-lru"
)

// Cached memoizes fetched byte ranges so repeated pointer chases over the
// same structures do not re-issue reads against the target.
type Cached struct {
	inner Fetcher
	cache *lru.Cache
}

type cacheKey struct {
	addr uint64
	n    int
}

// NewCached wraps inner with an LRU cache holding up to size byte ranges.
func NewCached(inner Fetcher, size int) (*Cached, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cached{inner: inner, cache: cache}, nil
}

// Fetch returns the cached range when present, reading through otherwise.
// Errors are not cached; a failing address is retried on the next fetch.
func (c *Cached) Fetch(addr uint64, n int) ([]byte, error) {
	key := cacheKey{addr: addr, n: n}
	if v, ok := c.cache.Get(key); ok {
		return v.([]byte), nil
	}
	data, err := c.inner.Fetch(addr, n)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, data)
	return data, nil
}
