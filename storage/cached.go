package storage

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ipfs/go-cid"
)

// Cached wraps a BlockStore with an in-memory LRU over immutable blocks.
// Blocks never change once stored, so entries are never invalidated.
type Cached struct {
	inner BlockStore
	cache *lru.Cache[string, []byte]
}

var _ BlockStore = (*Cached)(nil)

// NewCached caches up to size blocks of the inner store.
func NewCached(inner BlockStore, size int) (*Cached, error) {
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Cached{inner: inner, cache: cache}, nil
}

func (c *Cached) Put(ctx context.Context, codec uint64, data []byte) (cid.Cid, error) {
	id, err := c.inner.Put(ctx, codec, data)
	if err != nil {
		return cid.Undef, err
	}
	c.cache.Add(id.KeyString(), data)
	return id, nil
}

func (c *Cached) Get(ctx context.Context, id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, ErrInvalidCID
	}
	if data, ok := c.cache.Get(id.KeyString()); ok {
		return data, nil
	}
	data, err := c.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.Add(id.KeyString(), data)
	return data, nil
}

func (c *Cached) Has(ctx context.Context, id cid.Cid) (bool, error) {
	if !id.Defined() {
		return false, nil
	}
	if c.cache.Contains(id.KeyString()) {
		return true, nil
	}
	return c.inner.Has(ctx, id)
}
