// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package hibp

import (
	"context"
	"github.com/dgraph-io/ristretto"
	"github.com/pkg/errors"
	"time"
)

// CachedClient keeps range responses in memory for a while. Only public range data is cached,
// keyed by prefix, never anything derived from a full password hash.
type CachedClient struct {
	inner LookupClient
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewCachedClient size is the max number of ranges kept in memory.
func NewCachedClient(inner LookupClient, size int64, ttl time.Duration) (*CachedClient, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: size * 10,
		MaxCost:     size,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create range cache")
	}

	return &CachedClient{inner: inner, cache: cache, ttl: ttl}, nil
}

func (c *CachedClient) Range(ctx context.Context, prefix string) ([]string, error) {
	if v, ok := c.cache.Get(prefix); ok {
		return v.([]string), nil
	}

	lines, err := c.inner.Range(ctx, prefix)
	if err != nil {
		return nil, err
	}

	c.cache.SetWithTTL(prefix, lines, 1, c.ttl)
	return lines, nil
}

// Wait blocks until pending cache writes are applied.
func (c *CachedClient) Wait() {
	c.cache.Wait()
}

func (c *CachedClient) Close() {
	c.cache.Close()
}
