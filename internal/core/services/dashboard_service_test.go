package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/myteamhq/myteam_console/internal/apperrors"
	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/services"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockRecognitions *MockRecognitionSource
	mockMetrics      *MockMetricsSource
	mockScope        *MockScopeService
	service          *services.DashboardService
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockRecognitions = new(MockRecognitionSource)
	suite.mockMetrics = new(MockMetricsSource)
	suite.mockScope = new(MockScopeService)
	suite.service = services.NewDashboardService(suite.mockRecognitions, suite.mockMetrics, suite.mockScope)
}

func (suite *DashboardServiceTestSuite) TestSummary_ComposesAllBranches() {
	ctx := context.Background()
	user := domain.User{Email: "tara@corp.test", Role: domain.RoleTeamlead}

	recs := []domain.Recognition{
		{ID: "a", SenderName: "Tara Lead", RecipientName: "Evan Dev"},
		{ID: "b", SenderName: "Omar Other", RecipientName: "Pete Foreign"},
	}
	suite.mockMetrics.On("Summary", ctx).Return(domain.MetricsSummary{Count: 240}, nil).Once()
	suite.mockRecognitions.On("ListRecognitions", ctx).Return(recs, nil).Once()
	suite.mockScope.On("ResolveScope", ctx, user).Return(domain.NewScopeSet("Tara Lead", "Evan Dev"), nil).Once()

	summary, err := suite.service.Summary(ctx, user)

	suite.Require().NoError(err)
	suite.Equal(240, summary.TotalRecognitions)
	suite.Equal(1, summary.VisibleRecognitions)
	suite.Equal(2, summary.ScopeSize)
	suite.False(summary.Unscoped)
}

func (suite *DashboardServiceTestSuite) TestSummary_AdminIsUnscoped() {
	ctx := context.Background()
	user := domain.User{Email: "root@corp.test", Role: domain.RoleAdmin}

	recs := []domain.Recognition{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	suite.mockMetrics.On("Summary", ctx).Return(domain.MetricsSummary{Count: 3}, nil).Once()
	suite.mockRecognitions.On("ListRecognitions", ctx).Return(recs, nil).Once()
	suite.mockScope.On("ResolveScope", ctx, user).Return(domain.UnscopedSet(), nil).Once()

	summary, err := suite.service.Summary(ctx, user)

	suite.Require().NoError(err)
	suite.Equal(3, summary.VisibleRecognitions)
	suite.True(summary.Unscoped)
}

func (suite *DashboardServiceTestSuite) TestSummary_MetricsFailureDegradesThatSliceOnly() {
	ctx := context.Background()
	user := domain.User{Email: "tara@corp.test", Role: domain.RoleTeamlead}

	recs := []domain.Recognition{{ID: "a", SenderName: "Tara Lead", RecipientName: "Evan Dev"}}
	suite.mockMetrics.On("Summary", ctx).Return(domain.MetricsSummary{}, apperrors.ErrNetwork).Once()
	suite.mockRecognitions.On("ListRecognitions", ctx).Return(recs, nil).Once()
	suite.mockScope.On("ResolveScope", ctx, user).Return(domain.NewScopeSet("Tara Lead"), nil).Once()

	summary, err := suite.service.Summary(ctx, user)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNetwork)
	suite.Equal(0, summary.TotalRecognitions)
	suite.Equal(1, summary.VisibleRecognitions)
}

func (suite *DashboardServiceTestSuite) TestSummary_ScopeFailureHidesRecords() {
	ctx := context.Background()
	user := domain.User{Email: "tara@corp.test", Role: domain.RoleTeamlead}

	recs := []domain.Recognition{{ID: "a", SenderName: "Tara Lead", RecipientName: "Evan Dev"}}
	suite.mockMetrics.On("Summary", ctx).Return(domain.MetricsSummary{Count: 10}, nil).Once()
	suite.mockRecognitions.On("ListRecognitions", ctx).Return(recs, nil).Once()
	suite.mockScope.On("ResolveScope", ctx, user).Return(domain.NewScopeSet(), errors.New("roster down")).Once()

	summary, err := suite.service.Summary(ctx, user)

	suite.Require().Error(err)
	suite.Equal(10, summary.TotalRecognitions)
	suite.Equal(0, summary.VisibleRecognitions)
	suite.Equal(0, summary.ScopeSize)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
