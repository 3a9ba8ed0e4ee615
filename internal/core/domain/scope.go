package domain

import "strings"

// ScopeSet is the transient set of person names whose records a user may
// view. It is derived from the session user and the roster, recomputed on
// every user change or roster reload, and never persisted.
//
// Admin visibility is the unscoped sentinel rather than an enumerated set,
// so it needs no roster lookup and cannot go stale.
type ScopeSet struct {
	unscoped bool
	names    map[string]struct{}
}

// NewScopeSet builds a scope over the given full names. Names are matched
// trimmed and case-insensitively; empty names are dropped.
func NewScopeSet(names ...string) ScopeSet {
	s := ScopeSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if key := scopeKey(n); key != "" {
			s.names[key] = struct{}{}
		}
	}
	return s
}

// UnscopedSet is the admin sentinel: every record is visible.
func UnscopedSet() ScopeSet {
	return ScopeSet{unscoped: true}
}

// Unscoped reports whether the scope admits all records.
func (s ScopeSet) Unscoped() bool {
	return s.unscoped
}

// Contains reports whether the named person is in scope.
func (s ScopeSet) Contains(name string) bool {
	if s.unscoped {
		return true
	}
	_, ok := s.names[scopeKey(name)]
	return ok
}

// ContainsAny reports whether any of the names is in scope. An empty key
// list means the record carries no identity and is hidden from scoped users.
func (s ScopeSet) ContainsAny(names []string) bool {
	if s.unscoped {
		return true
	}
	for _, n := range names {
		if s.Contains(n) {
			return true
		}
	}
	return false
}

// Len is the number of enumerated names; 0 for the unscoped sentinel.
func (s ScopeSet) Len() int {
	return len(s.names)
}

func scopeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
