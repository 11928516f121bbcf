package storage

import "sync"

// MemStore is an in-memory Storer. It backs tests and ephemeral asset sets
// that have no directory on disk.
type MemStore[T ValidatingSpec] struct {
	mu      sync.RWMutex
	records map[Identifier]T
}

func NewMemStore[T ValidatingSpec]() *MemStore[T] {
	return &MemStore[T]{
		records: map[Identifier]T{},
	}
}

func (s *MemStore[T]) Save(id Identifier, o T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[id] = o
	return nil
}

func (s *MemStore[T]) Get(id Identifier) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.records[id]
	if !ok {
		var nilVal T
		return nilVal
	}
	return val
}

func (s *MemStore[T]) GetAll() map[Identifier]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vals := map[Identifier]T{}
	for id, v := range s.records {
		vals[id] = v
	}
	return vals
}
