package resolve

import (
	"github.com/reportinghub/accesshub/types"
)

// Resolver projects effective permissions over the current store contents.
// It never mutates anything and every query is restartable.
type Resolver struct {
	store types.AssignmentReader
}

// New creates a resolver reading from the given store
func New(store types.AssignmentReader) *Resolver {
	return &Resolver{store: store}
}

// Effective computes the permission in effect for the subject, applying
// override precedence: a report override (only looked for when reportID is
// given) wins over the tenant default; nothing configured resolves to the
// zero Effective. When a key tuple is duplicated, the first record in
// insertion order wins.
func (r *Resolver) Effective(tenantID string, sub types.Subject, reportID string) (types.Effective, error) {
	assignments, err := r.store.ListTenant(tenantID)
	if err != nil {
		return types.Effective{}, err
	}

	if reportID != "" {
		for _, a := range assignments {
			if a.Subject == sub && a.Scope == types.ScopeReport && a.TargetID == reportID {
				return types.Effective{
					PermissionSetID: a.PermissionSetID,
					InheritedFrom:   types.InheritedFromReport,
					RLSRole:         a.RLSRole,
				}, nil
			}
		}
	}

	for _, a := range assignments {
		if a.Subject == sub && a.Scope == types.ScopeTenant {
			return types.Effective{
				PermissionSetID: a.PermissionSetID,
				InheritedFrom:   types.InheritedFromTenant,
				RLSRole:         a.RLSRole,
			}, nil
		}
	}

	return types.Effective{}, nil
}

// ReferenceCount counts assignments pointing at the permission set,
// across every tenant and scope
func (r *Resolver) ReferenceCount(permissionSetID string) (int, error) {
	assignments, err := r.store.List()
	if err != nil {
		return 0, err
	}

	n := 0
	for _, a := range assignments {
		if a.PermissionSetID == permissionSetID {
			n++
		}
	}
	return n, nil
}

// IsReferenced tells if any assignment points at the permission set.
// The catalog refuses to delete a referenced set.
func (r *Resolver) IsReferenced(permissionSetID string) (bool, error) {
	n, err := r.ReferenceCount(permissionSetID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
