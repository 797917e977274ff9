package accesshub

import (
	"fmt"

	"github.com/reportinghub/accesshub/types"
)

// PermissionSets returns the catalog in stable order
func (h *Hub) PermissionSets() []types.PermissionSet {
	return h.catalog.List()
}

// PermissionSet looks up a permission set by id
func (h *Hub) PermissionSet(id string) (types.PermissionSet, bool) {
	return h.catalog.Get(id)
}

// CreatePermissionSet adds a permission set to the catalog, minting an id
// when the record carries none
func (h *Hub) CreatePermissionSet(ps types.PermissionSet) (types.PermissionSet, error) {
	return h.catalog.Add(ps)
}

// UpdatePermissionSet replaces the catalog record with the same id
func (h *Hub) UpdatePermissionSet(ps types.PermissionSet) error {
	return h.catalog.Update(ps)
}

// DeletePermissionSet removes the permission set, refusing while any
// assignment still references it
func (h *Hub) DeletePermissionSet(id string) error {
	return h.catalog.Delete(id)
}

// PermissionSetUsage counts the assignments referencing the permission
// set, the usage column next to each catalog entry
func (h *Hub) PermissionSetUsage(id string) (int, error) {
	return h.resolver.ReferenceCount(id)
}

// Reports returns the static report catalog
func (h *Hub) Reports() []types.ReportRef {
	return h.reports
}

// Report looks up a report by id
func (h *Hub) Report(id string) (types.ReportRef, bool) {
	for _, r := range h.reports {
		if r.ID == id {
			return r, true
		}
	}
	return types.ReportRef{}, false
}

// ReportAudit lists every group of the tenant with an effective permission
// on the report, largest audience first
func (h *Hub) ReportAudit(tenantID, reportID string) ([]types.AuditRow, error) {
	ix, ok := h.indexes[tenantID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownTenant, tenantID)
	}
	return h.resolver.ReportAudit(ix, reportID)
}
