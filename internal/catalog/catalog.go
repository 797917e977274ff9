package catalog

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/reportinghub/accesshub/types"
)

// ReferenceChecker tells if any assignment still points at a permission
// set; the resolver implements it over the live store
type ReferenceChecker interface {
	IsReferenced(permissionSetID string) (bool, error)
}

// Catalog holds the editable permission sets of the console, in a stable
// order. Deleting a set that assignments still reference is refused, the
// guard the edit dialogs surface as a blocking message.
type Catalog struct {
	sets []types.PermissionSet
	refs ReferenceChecker
	log  logr.Logger
}

// NewCatalog creates a catalog seeded with the given permission sets
func NewCatalog(log logr.Logger, refs ReferenceChecker, seed ...types.PermissionSet) *Catalog {
	c := &Catalog{
		sets: make([]types.PermissionSet, 0, len(seed)),
		refs: refs,
		log:  log,
	}
	c.sets = append(c.sets, seed...)
	return c
}

// Add appends a permission set, minting a ps_-prefixed id when none is given
func (c *Catalog) Add(ps types.PermissionSet) (types.PermissionSet, error) {
	if ps.ID == "" {
		ps.ID = "ps_" + uuid.New().String()
	}
	c.log.V(4).Info("add permission set", "id", ps.ID, "name", ps.Name)

	c.sets = append(c.sets, ps)
	return ps, nil
}

// Update replaces the permission set with the same id
func (c *Catalog) Update(ps types.PermissionSet) error {
	c.log.V(4).Info("update permission set", "id", ps.ID, "name", ps.Name)

	for i := range c.sets {
		if c.sets[i].ID == ps.ID {
			c.sets[i] = ps
			return nil
		}
	}
	return fmt.Errorf("%w: permission set %s", types.ErrNotFound, ps.ID)
}

// Delete removes the permission set unless assignments still reference it
func (c *Catalog) Delete(id string) error {
	c.log.V(4).Info("delete permission set", "id", id)

	referenced, err := c.refs.IsReferenced(id)
	if err != nil {
		return err
	}
	if referenced {
		return fmt.Errorf("%w: permission set %s", types.ErrPermissionSetInUse, id)
	}

	for i := range c.sets {
		if c.sets[i].ID == id {
			c.sets = append(c.sets[:i], c.sets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: permission set %s", types.ErrNotFound, id)
}

// Get looks up a permission set by id
func (c *Catalog) Get(id string) (types.PermissionSet, bool) {
	for _, ps := range c.sets {
		if ps.ID == id {
			return ps, true
		}
	}
	return types.PermissionSet{}, false
}

// List returns the permission sets in catalog order
func (c *Catalog) List() []types.PermissionSet {
	out := make([]types.PermissionSet, len(c.sets))
	copy(out, c.sets)
	return out
}
