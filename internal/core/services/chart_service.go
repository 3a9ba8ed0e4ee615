package services

import (
	"context"
	"fmt"

	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/ports/repositories"
	portssvc "github.com/myteamhq/myteam_console/internal/core/ports/services"
	"github.com/myteamhq/myteam_console/internal/core/viewengine"
)

// ChartService aggregates the user's visible recognitions into chart
// series. Drill-down filters cross-apply: a selected role narrows the
// month series and a selected month narrows the role series, so each chart
// shows the breakdown of the other's selection.
type ChartService struct {
	recognitions repositories.RecognitionSource
	scope        portssvc.ScopeSvcFacade
}

func NewChartService(recognitions repositories.RecognitionSource, scope portssvc.ScopeSvcFacade) *ChartService {
	return &ChartService{recognitions: recognitions, scope: scope}
}

func (s *ChartService) RecognitionCharts(ctx context.Context, user domain.User, sel domain.ChartSelection) (portssvc.ChartData, error) {
	empty := portssvc.ChartData{
		Months:    []viewengine.MonthBucket{},
		Roles:     []viewengine.RoleBucket{},
		Selection: sel,
	}

	scope, err := s.scope.ResolveScope(ctx, user)
	if err != nil {
		return empty, err
	}
	records, err := s.recognitions.ListRecognitions(ctx)
	if err != nil {
		return empty, fmt.Errorf("failed to fetch recognitions for charts: %w", err)
	}

	visible := viewengine.ApplyScope(records, scope)
	return portssvc.ChartData{
		Months:    viewengine.AggregateByMonth(viewengine.FilterByRole(visible, sel.Role)),
		Roles:     viewengine.AggregateByRole(viewengine.FilterByMonth(visible, sel.Month)),
		Selection: sel,
	}, nil
}
