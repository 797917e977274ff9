package accesshub

import (
	"fmt"

	"github.com/reportinghub/accesshub/types"
)

// Tenants returns the configured tenants
func (h *Hub) Tenants() []types.Tenant {
	return h.tenants
}

// Tenant looks up a configured tenant by id
func (h *Hub) Tenant(tenantID string) (*types.Tenant, bool) {
	ix, ok := h.indexes[tenantID]
	if !ok {
		return nil, false
	}
	return ix.Tenant(), true
}

// ResolveMembers returns every user reachable from the group through
// nested membership, in traversal order. A user reachable along several
// paths shows up once per path; an unknown group resolves to no users.
func (h *Hub) ResolveMembers(tenantID, groupID string) ([]types.User, error) {
	ix, ok := h.indexes[tenantID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownTenant, tenantID)
	}
	return ix.ResolveMembers(groupID), nil
}

// DistinctMembers returns the deduplicated ids of users reachable from
// the group
func (h *Hub) DistinctMembers(tenantID, groupID string) (map[string]struct{}, error) {
	ix, ok := h.indexes[tenantID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownTenant, tenantID)
	}
	return ix.DistinctMembers(groupID), nil
}

// MemberCount is the member number the group tables display: the length
// of ResolveMembers, multi-path duplicates included
func (h *Hub) MemberCount(tenantID, groupID string) (int, error) {
	ix, ok := h.indexes[tenantID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", types.ErrUnknownTenant, tenantID)
	}
	return ix.MemberCount(groupID), nil
}
