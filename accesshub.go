// Package accesshub computes who can do what to which report across the
// tenants of a mirrored directory. It resolves transitive group membership
// and applies assignment override precedence over an in-memory, explicitly
// injected store; rendering and persistence stay outside.
package accesshub

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/reportinghub/accesshub/internal/catalog"
	"github.com/reportinghub/accesshub/internal/directory"
	"github.com/reportinghub/accesshub/internal/resolve"
	"github.com/reportinghub/accesshub/internal/store"
	"github.com/reportinghub/accesshub/types"
)

// Hub wires the directory indexes, the permission set catalog, the report
// list, and the assignment store behind one synchronized facade
type Hub struct {
	tenants  []types.Tenant
	indexes  map[string]*directory.Index
	reports  []types.ReportRef
	store    types.AssignmentStore
	resolver *resolve.Resolver
	catalog  *catalog.SyncedCatalog
	log      logr.Logger
}

// New creates a Hub over the configured directory, catalog, and store
func New(opts ...Option) (*Hub, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.log.GetSink() == nil {
		cfg.log = stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile))
	}

	h := &Hub{
		tenants: cfg.tenants,
		indexes: make(map[string]*directory.Index, len(cfg.tenants)),
		reports: cfg.reports,
		log:     cfg.log,
	}
	for i := range h.tenants {
		h.indexes[h.tenants[i].ID] = directory.NewIndex(&h.tenants[i])
	}

	h.store = cfg.store
	if h.store == nil {
		h.store = store.NewSyncedStore(
			store.NewListStore(cfg.log.WithName("assignments"), cfg.assignments...))
	}

	h.resolver = resolve.New(h.store)
	h.catalog = catalog.NewSyncedCatalog(
		catalog.NewCatalog(cfg.log.WithName("catalog"), h.resolver, cfg.permissionSets...))

	return h, nil
}
