package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is the in-memory Store implementation. Single-key operations
// are atomic under the mutex.
type Memory[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{
		items: make(map[string]T),
	}
}

func (m *Memory[T]) Insert(_ context.Context, key string, value T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = value

	return nil
}

func (m *Memory[T]) Get(_ context.Context, key string) (T, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]

	return value, ok, nil
}

func (m *Memory[T]) Values(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for key := range m.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make([]T, 0, len(keys))
	for _, key := range keys {
		values = append(values, m.items[key])
	}

	return values, nil
}

func (m *Memory[T]) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)

	return nil
}

// MemoryEmailSet is the in-memory uniqueness index. Claim is a
// check-and-insert under one lock.
type MemoryEmailSet struct {
	mu     sync.Mutex
	claims map[string]bool
}

func NewMemoryEmailSet() *MemoryEmailSet {
	return &MemoryEmailSet{
		claims: make(map[string]bool),
	}
}

func (s *MemoryEmailSet) Contains(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.claims[email], nil
}

func (s *MemoryEmailSet) Claim(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.claims[email] {
		return ErrEmailClaimed
	}
	s.claims[email] = true

	return nil
}

func (s *MemoryEmailSet) Release(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.claims, email)

	return nil
}
