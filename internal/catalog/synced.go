package catalog

import (
	"sync"

	"github.com/reportinghub/accesshub/types"
)

// SyncedCatalog makes the inner catalog be safe in concurrent usages
type SyncedCatalog struct {
	c *Catalog
	sync.RWMutex
}

// NewSyncedCatalog wraps a catalog with a mutex
func NewSyncedCatalog(c *Catalog) *SyncedCatalog {
	return &SyncedCatalog{
		c: c,
	}
}

// Add delegates to the inner catalog
func (s *SyncedCatalog) Add(ps types.PermissionSet) (types.PermissionSet, error) {
	s.Lock()
	defer s.Unlock()
	return s.c.Add(ps)
}

// Update delegates to the inner catalog
func (s *SyncedCatalog) Update(ps types.PermissionSet) error {
	s.Lock()
	defer s.Unlock()
	return s.c.Update(ps)
}

// Delete delegates to the inner catalog
func (s *SyncedCatalog) Delete(id string) error {
	s.Lock()
	defer s.Unlock()
	return s.c.Delete(id)
}

// Get delegates to the inner catalog
func (s *SyncedCatalog) Get(id string) (types.PermissionSet, bool) {
	s.RLock()
	defer s.RUnlock()
	return s.c.Get(id)
}

// List delegates to the inner catalog
func (s *SyncedCatalog) List() []types.PermissionSet {
	s.RLock()
	defer s.RUnlock()
	return s.c.List()
}
