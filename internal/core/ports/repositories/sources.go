// Package repositories defines the outbound ports of the console: the
// upstream myteam backend is the sole source of truth, and every source
// fetches fresh data per call.
package repositories

import (
	"context"

	"github.com/myteamhq/myteam_console/internal/core/domain"
)

// EmployeeSource serves the roster used for scope resolution and the
// employees table.
type EmployeeSource interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// RecognitionSource serves recognition records for tables and charts.
type RecognitionSource interface {
	ListRecognitions(ctx context.Context) ([]domain.Recognition, error)
}

// RecognitionTypeSource serves the configurable award types.
type RecognitionTypeSource interface {
	ListRecognitionTypes(ctx context.Context) ([]domain.RecognitionType, error)
}

// LeaderboardSource serves the precomputed top-sender/top-recipient panels.
type LeaderboardSource interface {
	TopSenders(ctx context.Context) ([]domain.LeaderboardEntry, error)
	TopRecipients(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

// MetricsSource serves backend-wide recognition totals.
type MetricsSource interface {
	Summary(ctx context.Context) (domain.MetricsSummary, error)
}

// SourceProvider bundles all upstream sources for service wiring.
type SourceProvider struct {
	Employees        EmployeeSource
	Recognitions     RecognitionSource
	RecognitionTypes RecognitionTypeSource
	Leaderboard      LeaderboardSource
	Metrics          MetricsSource
}
