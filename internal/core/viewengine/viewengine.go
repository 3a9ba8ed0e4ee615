// Package viewengine derives table and chart views from record collections:
// scope filtering, free-text search, equality filters, type-aware stable
// sorting, pagination and time/category aggregation. Every function is pure
// and total over empty or partially populated input; worst case is an empty
// result, never an error.
package viewengine

import "github.com/myteamhq/myteam_console/internal/core/domain"

// Record exposes a collection element to the engine: field projection by
// wire name plus the fixed projection scanned by free-text search.
type Record interface {
	// FieldValue renders the named field as a string. ok is false when the
	// field is absent or empty, letting callers substitute a placeholder.
	FieldValue(field string) (value string, ok bool)
	// SearchValues returns the values scanned by free-text search.
	SearchValues() []string
}

// Scoped is implemented by records that belong to people; a record is
// visible when any of its keys is inside the viewer's scope.
type Scoped interface {
	ScopeKeys() []string
}

// timestamped records sort date fields on raw instants instead of their
// rendered strings.
type timestamped interface {
	Timestamp(field string) (int64, bool)
}

// ApplyScope keeps the records visible to the given scope. The unscoped
// sentinel keeps everything; an empty scope keeps nothing.
func ApplyScope[T Scoped](records []T, scope domain.ScopeSet) []T {
	if scope.Unscoped() {
		return records
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if scope.ContainsAny(rec.ScopeKeys()) {
			out = append(out, rec)
		}
	}
	return out
}
