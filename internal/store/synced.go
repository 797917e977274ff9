package store

import (
	"sync"

	"github.com/reportinghub/accesshub/types"
)

var _ types.AssignmentStore = (*syncedStore)(nil)

// syncedStore makes the inner store be safe in concurrent usages.
// The engine itself is synchronous; this guards multi-threaded hosts.
type syncedStore struct {
	s types.AssignmentStore
	sync.RWMutex
}

// NewSyncedStore wraps an assignment store with a mutex
func NewSyncedStore(s types.AssignmentStore) *syncedStore {
	return &syncedStore{
		s: s,
	}
}

// Add implements AssignmentWriter interface
func (s *syncedStore) Add(a types.Assignment) error {
	s.Lock()
	defer s.Unlock()
	return s.s.Add(a)
}

// Update implements AssignmentWriter interface
func (s *syncedStore) Update(a types.Assignment) error {
	s.Lock()
	defer s.Unlock()
	return s.s.Update(a)
}

// Remove implements AssignmentWriter interface
func (s *syncedStore) Remove(key types.AssignmentKey) error {
	s.Lock()
	defer s.Unlock()
	return s.s.Remove(key)
}

// List implements AssignmentReader interface
func (s *syncedStore) List() ([]types.Assignment, error) {
	s.RLock()
	defer s.RUnlock()
	return s.s.List()
}

// ListTenant implements AssignmentReader interface
func (s *syncedStore) ListTenant(tenantID string) ([]types.Assignment, error) {
	s.RLock()
	defer s.RUnlock()
	return s.s.ListTenant(tenantID)
}
