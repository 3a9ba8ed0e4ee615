package services

import (
	portsrepo "github.com/myteamhq/myteam_console/internal/core/ports/repositories"
	portssvc "github.com/myteamhq/myteam_console/internal/core/ports/services"
)

// NewServiceContainer wires all console services over the upstream sources.
func NewServiceContainer(sources portsrepo.SourceProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Scope first: every scoped view depends on it.
	container.Scope = NewScopeService(sources.Employees)

	container.View = NewViewService(
		sources.Recognitions,
		sources.Employees,
		sources.RecognitionTypes,
		container.Scope,
	)
	container.Chart = NewChartService(sources.Recognitions, container.Scope)
	container.Leaderboard = NewLeaderboardService(sources.Leaderboard)
	container.Dashboard = NewDashboardService(sources.Recognitions, sources.Metrics, container.Scope)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.ScopeSvcFacade       = (*ScopeService)(nil)
	_ portssvc.ViewSvcFacade        = (*ViewService)(nil)
	_ portssvc.ChartSvcFacade       = (*ChartService)(nil)
	_ portssvc.LeaderboardSvcFacade = (*LeaderboardService)(nil)
	_ portssvc.DashboardSvcFacade   = (*DashboardService)(nil)
)
