// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache memoizes pure functions, such as compiling a date layout.
package cache

import (
	"sync"
)

// DefaultSize is the number of entries a Cache holds if MaxSize is zero.
const DefaultSize = 256

// Cache maps keys to the results of a pure function. When it grows beyond
// its maximum size, arbitrary entries are dropped.
//
// Its zero value is safe to use. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	// MaxSize is the maximum number of entries. If it is zero, DefaultSize
	// is used. It must not be changed after the first call to Get.
	MaxSize int

	mu sync.RWMutex
	m  map[K]V
}

// Get returns the value for k, calling fill to compute it if it is not
// cached. fill may be called concurrently for the same key; only one result
// is kept.
func (c *Cache[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	if ok {
		return v
	}

	nv := fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.m[k]; ok {
		return v
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	for old := range c.m {
		if len(c.m) < c.limit() {
			break
		}
		delete(c.m, old)
	}
	c.m[k] = nv
	return nv
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Flush removes all entries.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}

func (c *Cache[K, V]) limit() int {
	if c.MaxSize > 0 {
		return c.MaxSize
	}
	return DefaultSize
}
