package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/SineMag/Eatery/repository"
)

// memStore is an in-memory KVStore for tests.
type memStore struct {
	mu     sync.Mutex
	m      map[string][]byte
	writes int
}

func newMemStore() *memStore {
	return &memStore{m: make(map[string][]byte)}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.m[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}
	return append([]byte(nil), b...), nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = append([]byte(nil), value...)
	s.writes++
	return nil
}

func (s *memStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
