// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package cache

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Defaults for MemoryClient.
const (
	DefaultMemorySize = 1024
	DefaultMemoryTTL  = 10 * time.Minute
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero means the cache-wide TTL applies
}

// MemoryClient implements Client with a bounded, expiring LRU. Entries
// expire at the earlier of their own ttl and the cache-wide maxTTL.
type MemoryClient struct {
	lru *expirable.LRU[string, memoryEntry]
	now func() time.Time
}

// NewMemoryClient creates an in-process cache holding up to size entries.
func NewMemoryClient(size int, maxTTL time.Duration) *MemoryClient {
	if size <= 0 {
		size = DefaultMemorySize
	}
	if maxTTL <= 0 {
		maxTTL = DefaultMemoryTTL
	}
	return &MemoryClient{
		lru: expirable.NewLRU[string, memoryEntry](size, nil, maxTTL),
		now: time.Now,
	}
}

// Get retrieves a value, returning ErrCacheMiss when absent or expired.
func (c *MemoryClient) Get(_ context.Context, key string) ([]byte, error) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		c.lru.Remove(key)
		return nil, ErrCacheMiss
	}
	return append([]byte(nil), entry.value...), nil
}

// Set stores a copy of value.
func (c *MemoryClient) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.lru.Add(key, entry)
	return nil
}

// Delete removes a key.
func (c *MemoryClient) Delete(_ context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// DeleteByPrefix removes every key under prefix.
func (c *MemoryClient) DeleteByPrefix(_ context.Context, prefix string) error {
	for _, k := range c.lru.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.lru.Remove(k)
		}
	}
	return nil
}

// Len reports the number of live entries.
func (c *MemoryClient) Len() int {
	return c.lru.Len()
}

// Close purges the cache.
func (c *MemoryClient) Close() error {
	c.lru.Purge()
	return nil
}
