package types

// AssignmentStore holds the mutable assignment records the resolution
// engine projects over
type AssignmentStore interface {
	AssignmentWriter
	AssignmentReader
}

// AssignmentReader defines methods to query assignment records
type AssignmentReader interface {
	// List returns every assignment in insertion order
	List() ([]Assignment, error)

	// ListTenant returns the tenant's assignments in insertion order
	ListTenant(tenantID string) ([]Assignment, error)
}

// AssignmentWriter defines methods to create, update, or remove assignment records
type AssignmentWriter interface {
	// Add appends the assignment unconditionally, duplicates included
	Add(Assignment) error

	// Update replaces the first record matching the assignment's key tuple;
	// when nothing matches it changes nothing and does not insert
	Update(Assignment) error

	// Remove deletes every record matching the key tuple
	Remove(AssignmentKey) error
}
