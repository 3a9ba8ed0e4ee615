package dto

import "github.com/myteamhq/myteam_console/internal/core/domain"

// ViewStateRequest binds the table control query parameters shared by all
// view endpoints. Bounds are validated at binding; anything the validator
// lets through is still normalised by the core before use.
type ViewStateRequest struct {
	Search      string `form:"search"`
	SortField   string `form:"sortField"`
	SortOrder   string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	FilterField string `form:"filterField"`
	FilterValue string `form:"filterValue"`
	Page        int    `form:"page" binding:"omitempty,min=0"`
	Size        int    `form:"size" binding:"omitempty,min=1,max=100"`

	// Chart drill-down selection: narrows the recognitions table to the
	// selected month/recipient role, mirroring the charts endpoint.
	Month string `form:"month" binding:"omitempty,chartmonth"`
	Role  string `form:"role"`
}

// ToViewState converts the bound request into the core control state.
func (r ViewStateRequest) ToViewState() domain.ViewState {
	return domain.ViewState{
		SearchText:  r.Search,
		SortField:   r.SortField,
		SortOrder:   r.SortOrder,
		FilterField: r.FilterField,
		FilterValue: r.FilterValue,
		Page:        r.Page,
		PageSize:    r.Size,
		Selection:   domain.ChartSelection{Month: r.Month, Role: r.Role},
	}.Normalize()
}

// PageMeta is the pagination metadata every view response carries.
// Callers must re-read totalPages and page after every request; a filter
// change can shrink both.
type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

func pageMetaOf[T any](res domain.ViewResult[T]) PageMeta {
	return PageMeta{
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: res.TotalPages,
		TotalItems: res.TotalItems,
	}
}
