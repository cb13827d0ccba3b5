package storage

import (
	"context"
	"sync"

	"github.com/ipfs/go-cid"

	"xdao.co/ceramic/cidutil"
)

// Memory is an in-process BlockStore. It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	blocks map[string][]byte
}

var _ BlockStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{blocks: make(map[string][]byte)}
}

func (m *Memory) Put(ctx context.Context, codec uint64, data []byte) (cid.Cid, error) {
	id, err := cidutil.Sum(codec, data)
	if err != nil {
		return cid.Undef, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blocks[id.KeyString()]; !ok {
		stored := make([]byte, len(data))
		copy(stored, data)
		m.blocks[id.KeyString()] = stored
	}
	return id, nil
}

func (m *Memory) Get(ctx context.Context, id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, ErrInvalidCID
	}
	m.mu.RLock()
	data, ok := m.blocks[id.KeyString()]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Has(ctx context.Context, id cid.Cid) (bool, error) {
	if !id.Defined() {
		return false, nil
	}
	m.mu.RLock()
	_, ok := m.blocks[id.KeyString()]
	m.mu.RUnlock()
	return ok, nil
}
