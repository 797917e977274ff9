package accesshub

import (
	"fmt"
	"sort"

	"github.com/reportinghub/accesshub/types"
)

// Effective computes the permission in effect for the subject, checking a
// report override first (when reportID is given) and the tenant default
// after. The zero Effective means nothing is configured.
func (h *Hub) Effective(tenantID string, sub types.Subject, reportID string) (types.Effective, error) {
	return h.resolver.Effective(tenantID, sub, reportID)
}

// Assignments returns the tenant's assignment records in insertion order
func (h *Hub) Assignments(tenantID string) ([]types.Assignment, error) {
	return h.store.ListTenant(tenantID)
}

// Assign records a new assignment
func (h *Hub) Assign(a types.Assignment) error {
	if err := h.validate(a); err != nil {
		return err
	}

	h.log.V(4).Info("assign", "tenant", a.TenantID, "subject", a.Subject, "set", a.PermissionSetID, "scope", a.Scope, "target", a.TargetID)
	return h.store.Add(a)
}

// Reassign replaces the record matching the assignment's key tuple.
// When no record matches, nothing changes.
func (h *Hub) Reassign(a types.Assignment) error {
	if err := h.validate(a); err != nil {
		return err
	}

	h.log.V(4).Info("reassign", "tenant", a.TenantID, "subject", a.Subject, "set", a.PermissionSetID, "scope", a.Scope, "target", a.TargetID)
	return h.store.Update(a)
}

// Unassign removes the records matching the key tuple
func (h *Hub) Unassign(key types.AssignmentKey) error {
	h.log.V(4).Info("unassign", "tenant", key.TenantID, "subject", key.Subject, "scope", key.Scope, "target", key.TargetID)
	return h.store.Remove(key)
}

// ApplyTenantDefaults writes one tenant-scope assignment per group, the
// bulk path the setup wizard takes after the admin picks a permission set
// for each selected group
func (h *Hub) ApplyTenantDefaults(tenantID string, defaults map[types.GroupSubject]string) error {
	groups := make([]string, 0, len(defaults))
	for g := range defaults {
		groups = append(groups, string(g))
	}
	sort.Strings(groups)

	for _, g := range groups {
		a := types.Assignment{
			TenantID:        tenantID,
			Subject:         types.GroupSubject(g),
			PermissionSetID: defaults[types.GroupSubject(g)],
			Scope:           types.ScopeTenant,
		}
		if err := h.Assign(a); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hub) validate(a types.Assignment) error {
	if a.Subject == nil {
		return types.ErrInvalidSubject
	}
	if !a.Scope.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidScope, a.Scope)
	}
	if a.Scope == types.ScopeReport && a.TargetID == "" {
		return fmt.Errorf("%w: subject %s", types.ErrMissingTarget, a.Subject)
	}
	return nil
}
