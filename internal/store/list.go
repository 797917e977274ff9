package store

import (
	"github.com/go-logr/logr"

	"github.com/reportinghub/accesshub/types"
)

var _ types.AssignmentStore = (*listStore)(nil)

// listStore keeps assignments in insertion order, like the client-side
// store it replaces. All lookups are first-match over that order, so a
// duplicate of a key tuple silently shadows the later record.
type listStore struct {
	assignments []types.Assignment
	log         logr.Logger
}

// NewListStore creates an assignment store seeded with the given records
func NewListStore(log logr.Logger, seed ...types.Assignment) *listStore {
	s := &listStore{
		assignments: make([]types.Assignment, 0, len(seed)),
		log:         log,
	}
	s.assignments = append(s.assignments, seed...)
	return s
}

// Add implements AssignmentWriter interface.
// It appends unconditionally: uniqueness of the key tuple is the caller's
// to keep, first-match lookups decide what a duplicate means.
func (s *listStore) Add(a types.Assignment) error {
	s.log.V(4).Info("add assignment", "subject", a.Subject, "set", a.PermissionSetID, "scope", a.Scope, "target", a.TargetID)

	s.assignments = append(s.assignments, a)
	return nil
}

// Update implements AssignmentWriter interface.
// A missing tuple is a no-op, not an insert.
func (s *listStore) Update(a types.Assignment) error {
	s.log.V(4).Info("update assignment", "subject", a.Subject, "set", a.PermissionSetID, "scope", a.Scope, "target", a.TargetID)

	key := a.Key()
	for i := range s.assignments {
		if s.assignments[i].Matches(key) {
			s.assignments[i] = a
			return nil
		}
	}
	return nil
}

// Remove implements AssignmentWriter interface.
// Every record matching the tuple goes; removing a missing tuple is fine.
func (s *listStore) Remove(key types.AssignmentKey) error {
	s.log.V(4).Info("remove assignment", "subject", key.Subject, "scope", key.Scope, "target", key.TargetID)

	kept := s.assignments[:0]
	for _, a := range s.assignments {
		if !a.Matches(key) {
			kept = append(kept, a)
		}
	}
	s.assignments = kept
	return nil
}

// List implements AssignmentReader interface
func (s *listStore) List() ([]types.Assignment, error) {
	out := make([]types.Assignment, len(s.assignments))
	copy(out, s.assignments)
	return out, nil
}

// ListTenant implements AssignmentReader interface
func (s *listStore) ListTenant(tenantID string) ([]types.Assignment, error) {
	out := make([]types.Assignment, 0)
	for _, a := range s.assignments {
		if a.TenantID == tenantID {
			out = append(out, a)
		}
	}
	return out, nil
}
