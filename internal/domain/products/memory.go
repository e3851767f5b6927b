package products

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore — потокобезопасный RowStore в памяти. Используется в тестах
// и как образец для индексированной реализации.
type MemoryStore struct {
	mu   sync.RWMutex
	rows [][]string
}

func NewMemoryStore(rows ...[]string) *MemoryStore {
	s := &MemoryStore{}
	for _, r := range rows {
		s.rows = append(s.rows, cloneRow(r))
	}
	return s
}

func (s *MemoryStore) ListRows(_ context.Context) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([][]string, len(s.rows))
	for i, r := range s.rows {
		out[i] = cloneRow(r)
	}
	return out, nil
}

func (s *MemoryStore) AppendRow(_ context.Context, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, cloneRow(row))
	return nil
}

func (s *MemoryStore) UpdateRow(_ context.Context, index int, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.rows) {
		return fmt.Errorf("memory store: update index %d out of range", index)
	}
	s.rows[index] = cloneRow(row)
	return nil
}

func (s *MemoryStore) DeleteRow(_ context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.rows) {
		return fmt.Errorf("memory store: delete index %d out of range", index)
	}
	s.rows = append(s.rows[:index], s.rows[index+1:]...)
	return nil
}

func cloneRow(row []string) []string {
	out := make([]string, len(row))
	copy(out, row)
	return out
}
