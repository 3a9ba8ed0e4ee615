package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/ports/repositories"
	portssvc "github.com/myteamhq/myteam_console/internal/core/ports/services"
	"github.com/myteamhq/myteam_console/internal/core/viewengine"
)

// DashboardService fans out the independent backend fetches (metrics
// summary, recognitions, roster-backed scope) concurrently and composes
// the summary. Each fetch degrades independently: a failed branch leaves
// its slice of the summary at zero values instead of failing the whole
// dashboard, and the first error is reported for the UI message. A
// superseding request cancels this one through its context, which is how
// stale in-flight loads get discarded.
type DashboardService struct {
	recognitions repositories.RecognitionSource
	metrics      repositories.MetricsSource
	scope        portssvc.ScopeSvcFacade
}

func NewDashboardService(
	recognitions repositories.RecognitionSource,
	metrics repositories.MetricsSource,
	scope portssvc.ScopeSvcFacade,
) *DashboardService {
	return &DashboardService{recognitions: recognitions, metrics: metrics, scope: scope}
}

func (s *DashboardService) Summary(ctx context.Context, user domain.User) (domain.DashboardSummary, error) {
	var (
		summary  domain.MetricsSummary
		records  []domain.Recognition
		scope    = domain.NewScopeSet() // fail closed until resolved
		firstErr error
		g        errgroup.Group
	)

	var metricsErr, recsErr, scopeErr error
	g.Go(func() error {
		summary, metricsErr = s.metrics.Summary(ctx)
		return nil
	})
	g.Go(func() error {
		records, recsErr = s.recognitions.ListRecognitions(ctx)
		return nil
	})
	g.Go(func() error {
		scope, scopeErr = s.scope.ResolveScope(ctx, user)
		return nil
	})
	_ = g.Wait()

	for _, err := range []error{scopeErr, recsErr, metricsErr} {
		if err != nil {
			firstErr = err
			break
		}
	}

	visible := viewengine.ApplyScope(records, scope)
	return domain.DashboardSummary{
		TotalRecognitions:   summary.Count,
		VisibleRecognitions: len(visible),
		ScopeSize:           scope.Len(),
		Unscoped:            scope.Unscoped(),
	}, firstErr
}
