package domain

// Sort directions as they appear on the wire.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Page size bounds enforced on every view request.
const (
	MinPageSize     = 1
	MaxPageSize     = 100
	DefaultPageSize = 20
)

// ViewState is the full set of table controls for one screen: search, sort,
// equality filter and pagination. It is owned by the caller and passed by
// value into the view pipeline on every recomputation; the pipeline never
// patches incrementally.
type ViewState struct {
	SearchText  string `json:"searchText"`
	SortField   string `json:"sortField"`
	SortOrder   string `json:"sortOrder"`
	FilterField string `json:"filterField,omitempty"`
	FilterValue string `json:"filterValue,omitempty"`
	Page        int    `json:"page"`
	PageSize    int    `json:"pageSize"`

	// Selection is the chart drill-down state. It narrows the recognitions
	// table alongside the charts; views over other record kinds ignore it.
	Selection ChartSelection `json:"selection,omitempty"`
}

// Normalize clamps the state into its documented bounds: pageSize into
// [1,100], page to >= 0, sortOrder to asc/desc. Page upper-bound clamping
// happens after filtering, when totalPages is known.
func (v ViewState) Normalize() ViewState {
	if v.PageSize == 0 {
		v.PageSize = DefaultPageSize
	}
	if v.PageSize < MinPageSize {
		v.PageSize = MinPageSize
	}
	if v.PageSize > MaxPageSize {
		v.PageSize = MaxPageSize
	}
	if v.Page < 0 {
		v.Page = 0
	}
	if v.SortOrder != SortDesc {
		v.SortOrder = SortAsc
	}
	return v
}

// ViewResult is one derived table view: the visible page plus recomputed
// pagination metadata. Page is the clamped page actually served, which may
// differ from the requested one after a filter shrank the set.
type ViewResult[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}
