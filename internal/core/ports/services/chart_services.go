package services

import (
	"context"

	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/viewengine"
)

// ChartData carries both chart series plus the drill-down selection they
// were computed under.
type ChartData struct {
	Months    []viewengine.MonthBucket `json:"months"`
	Roles     []viewengine.RoleBucket  `json:"roles"`
	Selection domain.ChartSelection    `json:"selection"`
}

// ChartSvcFacade derives chart-ready aggregations over the user's scope.
type ChartSvcFacade interface {
	// RecognitionCharts buckets the user's visible recognitions by month and
	// recipient role. A selected role narrows the month series, a selected
	// month narrows the role series.
	RecognitionCharts(ctx context.Context, user domain.User, sel domain.ChartSelection) (ChartData, error)
}
