package types

// Scope tells how far an assignment reaches
type Scope string

// assignment scopes
const (
	ScopeTenant Scope = "Tenant"
	ScopeReport Scope = "Report"
	// ScopeFolder exists in the directory schema but is never produced by
	// any operation; resolution does not consider it.
	ScopeFolder Scope = "Folder"
)

// Valid tells if the scope is one of the declared values
func (s Scope) Valid() bool {
	switch s {
	case ScopeTenant, ScopeReport, ScopeFolder:
		return true
	}
	return false
}

// Assignment binds a subject to a permission set at a scope.
// The (TenantID, Subject, Scope, TargetID) tuple is the identity of the
// record: updates and removals match on it, and it is expected unique,
// though nothing rejects a duplicate insert.
type Assignment struct {
	TenantID        string
	Subject         Subject
	PermissionSetID string
	Scope           Scope
	// TargetID names the report when Scope is Report, empty for Tenant scope
	TargetID string
	// RLSRole is carried through to callers untouched, never interpreted
	RLSRole string
}

// AssignmentKey is the identity tuple of an assignment
type AssignmentKey struct {
	TenantID string
	Subject  Subject
	Scope    Scope
	TargetID string
}

// Key returns the identity tuple of the assignment
func (a Assignment) Key() AssignmentKey {
	return AssignmentKey{
		TenantID: a.TenantID,
		Subject:  a.Subject,
		Scope:    a.Scope,
		TargetID: a.TargetID,
	}
}

// Matches tells if the assignment is the record the key names
func (a Assignment) Matches(k AssignmentKey) bool {
	return a.Key() == k
}

// Inheritance names the tier an effective permission came from
type Inheritance string

// inheritance sources
const (
	InheritedFromTenant Inheritance = "Tenant"
	InheritedFromReport Inheritance = "Report"
)

// Effective is the outcome of permission resolution for one subject and,
// optionally, one report. The zero value means no access is configured.
type Effective struct {
	PermissionSetID string
	InheritedFrom   Inheritance
	RLSRole         string
}

// Assigned tells if any permission set applies
func (e Effective) Assigned() bool {
	return e.PermissionSetID != ""
}

// AuditRow is one line of a report access audit: a group that can reach
// the report, how it got there, and how many users that pulls in.
type AuditRow struct {
	Group       Group
	Effective   Effective
	MemberCount int
}
