package viewengine

// TotalPages is max(1, ceil(count/pageSize)); even an empty collection has
// one (empty) page.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Paginate slices out the requested page and recomputes the page count.
// An out-of-range page yields an empty slice rather than an error or a
// silent clamp; callers re-read totalPages and clamp on their next pass
// (see ClampPage).
func Paginate[T any](records []T, page, pageSize int) ([]T, int) {
	totalPages := TotalPages(len(records), pageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	start := page * pageSize
	if page < 0 || start >= len(records) {
		return []T{}, totalPages
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end], totalPages
}

// ClampPage forces page into [0, totalPages-1].
func ClampPage(page, totalPages int) int {
	if page < 0 {
		return 0
	}
	if page > totalPages-1 {
		return totalPages - 1
	}
	return page
}
