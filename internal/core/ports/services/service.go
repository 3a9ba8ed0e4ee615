package services

import (
	"context"

	"github.com/myteamhq/myteam_console/internal/core/domain"
)

// DashboardSvcFacade composes the independent backend fetches into the
// dashboard summary.
type DashboardSvcFacade interface {
	Summary(ctx context.Context, user domain.User) (domain.DashboardSummary, error)
}

// ServiceContainer holds instances of all the application services and is
// the handlers' single entry point.
type ServiceContainer struct {
	Scope       ScopeSvcFacade
	View        ViewSvcFacade
	Chart       ChartSvcFacade
	Leaderboard LeaderboardSvcFacade
	Dashboard   DashboardSvcFacade
}
