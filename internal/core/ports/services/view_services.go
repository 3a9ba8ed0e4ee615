// Package services defines the inbound service facades consumed by the
// HTTP handlers.
package services

import (
	"context"

	"github.com/myteamhq/myteam_console/internal/core/domain"
)

// ScopeSvcFacade resolves the set of people whose records a session user
// may view.
type ScopeSvcFacade interface {
	// ResolveScope fetches the roster and derives the user's scope. On a
	// roster failure the returned scope fails closed (empty for non-admin
	// roles) alongside the error.
	ResolveScope(ctx context.Context, user domain.User) (domain.ScopeSet, error)
}

// ViewSvcFacade derives the scoped, filtered, sorted and paginated table
// views.
type ViewSvcFacade interface {
	RecognitionView(ctx context.Context, user domain.User, state domain.ViewState) (domain.ViewResult[domain.Recognition], error)
	EmployeeView(ctx context.Context, user domain.User, state domain.ViewState) (domain.ViewResult[domain.Employee], error)
	RecognitionTypeView(ctx context.Context, user domain.User, state domain.ViewState) (domain.ViewResult[domain.RecognitionType], error)
}
