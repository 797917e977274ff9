package accesshub

import (
	"github.com/go-logr/logr"

	"github.com/reportinghub/accesshub/loader"
	"github.com/reportinghub/accesshub/types"
)

// Config works together with Option to control the initialization of a Hub
type Config struct {
	tenants        []types.Tenant
	permissionSets []types.PermissionSet
	reports        []types.ReportRef
	assignments    []types.Assignment
	store          types.AssignmentStore
	log            logr.Logger
}

// Option controls how to init a Hub
type Option func(*Config)

// WithTenants adds tenants to the directory
func WithTenants(tenants ...types.Tenant) Option {
	return func(cfg *Config) {
		cfg.tenants = append(cfg.tenants, tenants...)
	}
}

// WithPermissionSets seeds the permission set catalog
func WithPermissionSets(sets ...types.PermissionSet) Option {
	return func(cfg *Config) {
		cfg.permissionSets = append(cfg.permissionSets, sets...)
	}
}

// WithReports sets the static report catalog
func WithReports(reports ...types.ReportRef) Option {
	return func(cfg *Config) {
		cfg.reports = append(cfg.reports, reports...)
	}
}

// WithAssignments seeds the assignment store.
// Ignored when a custom store is injected with WithStore.
func WithAssignments(assignments ...types.Assignment) Option {
	return func(cfg *Config) {
		cfg.assignments = append(cfg.assignments, assignments...)
	}
}

// WithSnapshot loads tenants, permission sets, reports, and seed
// assignments from a loaded directory snapshot
func WithSnapshot(snap *loader.Snapshot) Option {
	return func(cfg *Config) {
		cfg.tenants = append(cfg.tenants, snap.Tenants...)
		cfg.permissionSets = append(cfg.permissionSets, snap.PermissionSets...)
		cfg.reports = append(cfg.reports, snap.Reports...)
		cfg.assignments = append(cfg.assignments, snap.Assignments...)
	}
}

// WithStore injects a custom assignment store.
// The caller owns its locking discipline then; the default store is
// already safe for concurrent use.
func WithStore(s types.AssignmentStore) Option {
	return func(cfg *Config) {
		cfg.store = s
	}
}

// WithLogger sets logger for hub components
func WithLogger(l logr.Logger) Option {
	return func(cfg *Config) {
		cfg.log = l
	}
}
