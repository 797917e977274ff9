package directory

import (
	"github.com/reportinghub/accesshub/types"
)

// ResolveMembers returns every user reachable from the group by walking
// nested member lists depth first, in member-list order. The visited guard
// covers groups only: a cycle is walked once, but a user reachable along
// several paths shows up once per path. Callers wanting a set use
// DistinctMembers. Unknown group ids and dangling member refs degrade to
// omission, never to an error.
func (ix *Index) ResolveMembers(groupID string) []types.User {
	seen := make(map[string]struct{})
	users := make([]types.User, 0)

	var walk func(id string)
	walk = func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}

		grp, ok := ix.groups[id]
		if !ok {
			return
		}

		for _, m := range grp.Members {
			// a ref could be a user or a group; try user first
			if u, ok := ix.users[m.ID]; ok {
				users = append(users, *u)
			} else if _, ok := ix.groups[m.ID]; ok {
				walk(m.ID)
			}
		}
	}
	walk(groupID)

	return users
}

// DistinctMembers returns the ids of users reachable from the group,
// deduplicated across nested paths
func (ix *Index) DistinctMembers(groupID string) map[string]struct{} {
	members := make(map[string]struct{})
	for _, u := range ix.ResolveMembers(groupID) {
		members[u.ID] = struct{}{}
	}
	return members
}

// MemberCount is the length of ResolveMembers. It counts a multi-path user
// once per path, which is what the member columns in the console show.
func (ix *Index) MemberCount(groupID string) int {
	return len(ix.ResolveMembers(groupID))
}

// DirectMembers returns the group's own member list, unresolved
func (ix *Index) DirectMembers(groupID string) []types.MemberRef {
	grp, ok := ix.groups[groupID]
	if !ok {
		return nil
	}
	return grp.Members
}
