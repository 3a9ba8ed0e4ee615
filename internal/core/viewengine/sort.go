package viewengine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/myteamhq/myteam_console/internal/core/domain"
)

// Sort returns a stably sorted copy of records by the named field. Values
// that both parse as numbers compare numerically, otherwise as lowercased
// strings; absent values coerce to the empty string. Date fields sort on
// their raw timestamps when the record exposes them. Equal keys keep their
// incoming relative order, so the filter order is the tie-break.
func Sort[T Record](records []T, field, order string) []T {
	out := make([]T, len(records))
	copy(out, records)
	if field == "" {
		return out
	}
	desc := order == domain.SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		a := sortValueOf(out[i], field)
		b := sortValueOf(out[j], field)
		if desc {
			a, b = b, a
		}
		return lessValue(a, b)
	})
	return out
}

type sortValue struct {
	str   string
	num   float64
	isNum bool
}

func sortValueOf[T Record](rec T, field string) sortValue {
	if ts, ok := any(rec).(timestamped); ok {
		if v, found := ts.Timestamp(field); found {
			return sortValue{num: float64(v), isNum: true}
		}
	}
	raw, ok := rec.FieldValue(field)
	if !ok {
		raw = ""
	}
	v := sortValue{str: strings.ToLower(raw)}
	if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		v.num = n
		v.isNum = true
	}
	return v
}

func lessValue(a, b sortValue) bool {
	if a.isNum && b.isNum {
		return a.num < b.num
	}
	return a.str < b.str
}
