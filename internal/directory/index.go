package directory

import (
	"github.com/reportinghub/accesshub/types"
)

// Index is a tenant's directory keyed for resolution queries. The tenant
// is fully materialized before any query runs, so the index is built once
// and never mutated.
type Index struct {
	tenant *types.Tenant
	users  map[string]*types.User
	groups map[string]*types.Group
}

// NewIndex builds the lookup maps for one tenant
func NewIndex(tenant *types.Tenant) *Index {
	ix := &Index{
		tenant: tenant,
		users:  make(map[string]*types.User, len(tenant.Users)),
		groups: make(map[string]*types.Group, len(tenant.Groups)),
	}
	for i := range tenant.Users {
		ix.users[tenant.Users[i].ID] = &tenant.Users[i]
	}
	for i := range tenant.Groups {
		ix.groups[tenant.Groups[i].ID] = &tenant.Groups[i]
	}
	return ix
}

// Tenant returns the indexed tenant
func (ix *Index) Tenant() *types.Tenant {
	return ix.tenant
}

// User looks up a user by id
func (ix *Index) User(id string) (*types.User, bool) {
	u, ok := ix.users[id]
	return u, ok
}

// Group looks up a group by id
func (ix *Index) Group(id string) (*types.Group, bool) {
	g, ok := ix.groups[id]
	return g, ok
}

// Groups returns the tenant's groups in directory order
func (ix *Index) Groups() []types.Group {
	return ix.tenant.Groups
}
