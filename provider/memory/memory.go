// Package memory is an in-process Provider for tests and local runs.
// It mirrors the Redis semantics tracekv relies on: counters readable
// through Get, negative LRange indices, miss-is-not-an-error.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	pr "github.com/unkn0wn-root/tracekv/provider"
)

type Memory struct {
	mu    sync.RWMutex
	vals  map[string][]byte
	lists map[string][][]byte
	live  bool
}

var _ pr.Provider = (*Memory)(nil)

func New() *Memory {
	return &Memory{
		vals:  make(map[string][]byte),
		lists: make(map[string][][]byte),
		live:  true,
	}
}

// NewDisconnected returns a provider that works but reports Live() == false,
// standing in for a dead connection so callers can exercise their skip paths.
func NewDisconnected() *Memory {
	m := New()
	m.live = false
	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	v, ok := m.vals[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	m.mu.Lock()
	m.vals[key] = cp
	m.mu.Unlock()
	return nil
}

func (m *Memory) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	if raw, ok := m.vals[key]; ok {
		parsed, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("memory provider: incr on non-integer value at %q", key)
		}
		n = parsed
	}
	n++
	m.vals[key] = strconv.AppendInt(nil, n, 10)
	return n, nil
}

func (m *Memory) RPush(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	m.mu.Lock()
	m.lists[key] = append(m.lists[key], cp)
	m.mu.Unlock()
	return nil
}

func (m *Memory) LRange(_ context.Context, key string, start, stop int64) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.lists[key]
	n := int64(len(list))
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop || start >= n {
		return nil, nil
	}
	out := make([][]byte, 0, stop-start+1)
	for _, v := range list[start : stop+1] {
		cp := make([]byte, len(v))
		copy(cp, v)
		out = append(out, cp)
	}
	return out, nil
}

func (m *Memory) Exists(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.vals[key]; ok {
		return true, nil
	}
	_, ok := m.lists[key]
	return ok, nil
}

func (m *Memory) FlushAll(_ context.Context) error {
	m.mu.Lock()
	m.vals = make(map[string][]byte)
	m.lists = make(map[string][][]byte)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Live() bool { return m.live }

func (m *Memory) Close(_ context.Context) error { return nil }
