package types

import "strings"

// User is a directory user mirrored from the identity provider
type User struct {
	ID                string
	DisplayName       string
	Mail              string // may be empty for guests
	UserPrincipalName string // e.g. alice@contoso.com, or ...#EXT#... for guests
	AccountEnabled    bool
}

// Guest tells if the user is an external guest account
func (u User) Guest() bool {
	return strings.Contains(u.UserPrincipalName, "#EXT#")
}

// MemberRef points at a member of a group: a user id or another group's id.
// The two id spaces share no reserved prefix, resolving a ref means trying
// both collections.
type MemberRef struct {
	ID string
}

// Group is a directory group. Members is ordered and may nest other groups,
// cycles included.
type Group struct {
	ID              string
	DisplayName     string
	Description     string
	SecurityEnabled bool
	// MembershipRule is the dynamic-membership rule text, informational
	// only: membership always comes from the explicit Members list, the
	// rule is never evaluated here.
	MembershipRule string
	Members        []MemberRef
}

// Dynamic tells if the group carries a membership rule in the directory
func (g Group) Dynamic() bool {
	return g.MembershipRule != ""
}

// Tenant is one isolated customer directory: its users, its groups.
// Assignments and member refs never cross tenants.
type Tenant struct {
	ID            string
	DisplayName   string
	DefaultDomain string
	Users         []User
	Groups        []Group
}
