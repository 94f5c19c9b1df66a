package permissions

import (
	"sort"
	"strings"
)

// Separator is used between permissions in wire-form strings.
const Separator = ","

// Permission names a single grantable capability.
type Permission string

// Read permissions commonly requested at login.
const (
	Email         Permission = "email"
	PublicProfile Permission = "public_profile"
	UserFriends   Permission = "user_friends"
)

// Set is an unordered collection of permissions.
type Set map[Permission]struct{}

// NewSet builds a Set from the given permissions.
func NewSet(perms ...Permission) Set {
	s := make(Set, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// Parse converts a comma-separated permission string into a Set.
//
// Trims spaces and removes empty entries. Returns an empty Set for empty
// input, never nil.
func Parse(raw string) Set {
	s := Set{}
	if strings.TrimSpace(raw) == "" {
		return s
	}
	for _, part := range strings.Split(raw, Separator) {
		if part = strings.TrimSpace(part); part != "" {
			s[Permission(part)] = struct{}{}
		}
	}
	return s
}

// Join converts the Set back to its comma-separated wire form, with
// permissions in sorted order for stable output.
func (s Set) Join() string {
	names := make([]string, 0, len(s))
	for p := range s {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return strings.Join(names, Separator)
}

// Slice returns the permissions in sorted order.
func (s Set) Slice() []Permission {
	perms := make([]Permission, 0, len(s))
	for p := range s {
		perms = append(perms, p)
	}
	sort.Slice(perms, func(i, j int) bool { return perms[i] < perms[j] })
	return perms
}

// Contains reports whether p is in the Set.
func (s Set) Contains(p Permission) bool {
	_, ok := s[p]
	return ok
}

// Intersect returns the permissions present in both sets.
func (s Set) Intersect(other Set) Set {
	out := Set{}
	for p := range s {
		if other.Contains(p) {
			out[p] = struct{}{}
		}
	}
	return out
}

// IsEmpty reports whether the Set has no permissions.
func (s Set) IsEmpty() bool {
	return len(s) == 0
}

// Equal reports whether both sets hold exactly the same permissions.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the Set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for p := range s {
		out[p] = struct{}{}
	}
	return out
}
