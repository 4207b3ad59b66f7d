package memory

import (
	"context"
	"sync"
)

// RecordStore is an in-memory implementation of app.RecordStore, used when
// no Redis is configured and in tests. Values do not survive a restart.
type RecordStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewRecordStore() *RecordStore {
	return &RecordStore{values: make(map[string]string)}
}

func (s *RecordStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *RecordStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
