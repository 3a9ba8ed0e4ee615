package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/myteamhq/myteam_console/internal/core/domain"
	portsrepo "github.com/myteamhq/myteam_console/internal/core/ports/repositories"
	portssvc "github.com/myteamhq/myteam_console/internal/core/ports/services"
)

// --- Mock EmployeeSource ---
type MockEmployeeSource struct {
	mock.Mock
}

func (m *MockEmployeeSource) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

var _ portsrepo.EmployeeSource = (*MockEmployeeSource)(nil)

// --- Mock RecognitionSource ---
type MockRecognitionSource struct {
	mock.Mock
}

func (m *MockRecognitionSource) ListRecognitions(ctx context.Context) ([]domain.Recognition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recognition), args.Error(1)
}

var _ portsrepo.RecognitionSource = (*MockRecognitionSource)(nil)

// --- Mock RecognitionTypeSource ---
type MockRecognitionTypeSource struct {
	mock.Mock
}

func (m *MockRecognitionTypeSource) ListRecognitionTypes(ctx context.Context) ([]domain.RecognitionType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecognitionType), args.Error(1)
}

var _ portsrepo.RecognitionTypeSource = (*MockRecognitionTypeSource)(nil)

// --- Mock LeaderboardSource ---
type MockLeaderboardSource struct {
	mock.Mock
}

func (m *MockLeaderboardSource) TopSenders(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardSource) TopRecipients(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

var _ portsrepo.LeaderboardSource = (*MockLeaderboardSource)(nil)

// --- Mock MetricsSource ---
type MockMetricsSource struct {
	mock.Mock
}

func (m *MockMetricsSource) Summary(ctx context.Context) (domain.MetricsSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.MetricsSummary), args.Error(1)
}

var _ portsrepo.MetricsSource = (*MockMetricsSource)(nil)

// --- Mock ScopeService ---
type MockScopeService struct {
	mock.Mock
}

func (m *MockScopeService) ResolveScope(ctx context.Context, user domain.User) (domain.ScopeSet, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.ScopeSet), args.Error(1)
}

var _ portssvc.ScopeSvcFacade = (*MockScopeService)(nil)
