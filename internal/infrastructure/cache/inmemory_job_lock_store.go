package cache

import (
	"context"
	"sync"
	"time"
)

// InMemoryJobLockStore implements JobLockStore with a mutex-guarded map.
// Suitable for single-instance deployments and tests.
type InMemoryJobLockStore struct {
	mu    sync.Mutex
	locks map[string]time.Time // lock name -> expiry
}

// NewInMemoryJobLockStore creates a new in-memory job lock store
func NewInMemoryJobLockStore() *InMemoryJobLockStore {
	return &InMemoryJobLockStore{
		locks: make(map[string]time.Time),
	}
}

// TryAcquire attempts to take the named lock
func (s *InMemoryJobLockStore) TryAcquire(_ context.Context, name string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if expiry, held := s.locks[name]; held && time.Now().Before(expiry) {
		return false, nil
	}
	s.locks[name] = time.Now().Add(ttl)
	return true, nil
}

// Release releases the named lock
func (s *InMemoryJobLockStore) Release(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, name)
	return nil
}

// Ensure InMemoryJobLockStore implements JobLockStore
var _ JobLockStore = (*InMemoryJobLockStore)(nil)
