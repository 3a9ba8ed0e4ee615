package services

import (
	"context"
	"fmt"

	"github.com/myteamhq/myteam_console/internal/apperrors"
	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/policy"
	"github.com/myteamhq/myteam_console/internal/core/ports/repositories"
	portssvc "github.com/myteamhq/myteam_console/internal/core/ports/services"
	"github.com/myteamhq/myteam_console/internal/core/viewengine"
)

// ViewService is the view orchestrator: per request it recomputes
// scope -> filter -> sort -> paginate from scratch. Nothing is patched
// incrementally; with client-side dataset sizes (hundreds to low thousands
// of records) full recomputation is cheap and keeps the pipeline testable.
type ViewService struct {
	recognitions repositories.RecognitionSource
	employees    repositories.EmployeeSource
	types        repositories.RecognitionTypeSource
	scope        portssvc.ScopeSvcFacade
}

func NewViewService(
	recognitions repositories.RecognitionSource,
	employees repositories.EmployeeSource,
	types repositories.RecognitionTypeSource,
	scope portssvc.ScopeSvcFacade,
) *ViewService {
	return &ViewService{
		recognitions: recognitions,
		employees:    employees,
		types:        types,
		scope:        scope,
	}
}

// RecognitionView serves the recognitions table: records sent by or
// received by anyone in the user's scope, then searched, filtered, sorted
// and paginated. An active chart drill-down selection narrows the table
// the same way it narrows the charts. Fetch failures surface as an empty
// view plus the error; they never abort the pipeline.
func (s *ViewService) RecognitionView(ctx context.Context, user domain.User, state domain.ViewState) (domain.ViewResult[domain.Recognition], error) {
	state = state.Normalize()
	scope, err := s.scope.ResolveScope(ctx, user)
	if err != nil {
		return emptyView[domain.Recognition](state), err
	}
	records, err := s.recognitions.ListRecognitions(ctx)
	if err != nil {
		return emptyView[domain.Recognition](state), fmt.Errorf("failed to fetch recognitions: %w", err)
	}
	visible := viewengine.ApplyScope(records, scope)
	visible = viewengine.FilterByMonth(visible, state.Selection.Month)
	visible = viewengine.FilterByRole(visible, state.Selection.Role)
	return deriveView(visible, state), nil
}

// EmployeeView serves the employees table for managers and admins. The
// same scope rules apply, so a manager sees their unit and an admin sees
// everyone.
func (s *ViewService) EmployeeView(ctx context.Context, user domain.User, state domain.ViewState) (domain.ViewResult[domain.Employee], error) {
	state = state.Normalize()
	if !policy.CanAccessPage(user.Role, policy.PageEmployees) {
		return emptyView[domain.Employee](state), apperrors.ErrForbidden
	}
	scope, err := s.scope.ResolveScope(ctx, user)
	if err != nil {
		return emptyView[domain.Employee](state), err
	}
	roster, err := s.employees.ListEmployees(ctx)
	if err != nil {
		return emptyView[domain.Employee](state), fmt.Errorf("failed to fetch employees: %w", err)
	}
	return deriveView(viewengine.ApplyScope(roster, scope), state), nil
}

// RecognitionTypeView serves the award type table for managers and admins.
// Types carry no person identity, so only the policy gate applies.
func (s *ViewService) RecognitionTypeView(ctx context.Context, user domain.User, state domain.ViewState) (domain.ViewResult[domain.RecognitionType], error) {
	state = state.Normalize()
	if !policy.CanAccessPage(user.Role, policy.PageRecognitionTypes) {
		return emptyView[domain.RecognitionType](state), apperrors.ErrForbidden
	}
	types, err := s.types.ListRecognitionTypes(ctx)
	if err != nil {
		return emptyView[domain.RecognitionType](state), fmt.Errorf("failed to fetch recognition types: %w", err)
	}
	return deriveView(types, state), nil
}

// deriveView runs the non-scope stages of the pipeline and clamps the page
// into the recomputed range, so responses always carry an in-range page
// even when a filter just shrank the set.
func deriveView[T viewengine.Record](records []T, state domain.ViewState) domain.ViewResult[T] {
	visible := viewengine.Search(records, state.SearchText)
	visible = viewengine.FilterEquals(visible, state.FilterField, state.FilterValue)
	sorted := viewengine.Sort(visible, state.SortField, state.SortOrder)

	totalPages := viewengine.TotalPages(len(sorted), state.PageSize)
	page := viewengine.ClampPage(state.Page, totalPages)
	items, _ := viewengine.Paginate(sorted, page, state.PageSize)

	return domain.ViewResult[T]{
		Items:      items,
		Page:       page,
		PageSize:   state.PageSize,
		TotalPages: totalPages,
		TotalItems: len(sorted),
	}
}

func emptyView[T any](state domain.ViewState) domain.ViewResult[T] {
	return domain.ViewResult[T]{
		Items:      []T{},
		Page:       0,
		PageSize:   state.PageSize,
		TotalPages: 1,
		TotalItems: 0,
	}
}
