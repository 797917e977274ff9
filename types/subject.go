package types

import "strings"

// Subject is who an assignment is granted to: a user or a group out of the
// mirrored directory. The directory hands out one opaque id space for both,
// so the kind is carried in the type, not in the id.
// Subject is not expecting custom implementations.
type Subject interface {
	// String method is used to be serialized when loading or logging
	String() string
	subject() string
}

// UserSubject is a user id acting as an assignment subject
type UserSubject string

func (u UserSubject) String() string {
	return "user:" + string(u)
}

func (u UserSubject) subject() string {
	return u.String()
}

// ID returns the raw directory id
func (u UserSubject) ID() string {
	return string(u)
}

// GroupSubject is a group id acting as an assignment subject
type GroupSubject string

func (g GroupSubject) String() string {
	return "group:" + string(g)
}

func (g GroupSubject) subject() string {
	return g.String()
}

// ID returns the raw directory id
func (g GroupSubject) ID() string {
	return string(g)
}

// ParseSubject parses a serialized Subject
func ParseSubject(s string) (Subject, error) {
	switch {
	case strings.HasPrefix(s, "user:"):
		return UserSubject(strings.TrimPrefix(s, "user:")), nil
	case strings.HasPrefix(s, "group:"):
		return GroupSubject(strings.TrimPrefix(s, "group:")), nil
	}

	return nil, ErrInvalidSubject
}
