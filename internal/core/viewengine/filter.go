package viewengine

import "strings"

// MissingPlaceholder is the value the UI renders for absent fields. It is a
// legitimate filter value: selecting "-" matches records missing the field.
const MissingPlaceholder = "-"

// Search keeps records where any projected field contains the query as a
// case-insensitive substring. A blank query keeps everything.
func Search[T Record](records []T, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		for _, val := range rec.SearchValues() {
			if strings.Contains(strings.ToLower(val), q) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// FilterEquals keeps records whose rendered field equals value exactly,
// with absent fields standing in as the "-" placeholder. Either argument
// blank disables the filter.
func FilterEquals[T Record](records []T, field, value string) []T {
	if field == "" || value == "" {
		return records
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		v, ok := rec.FieldValue(field)
		if !ok {
			v = MissingPlaceholder
		}
		if v == value {
			out = append(out, rec)
		}
	}
	return out
}
