package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/myteamhq/myteam_console/internal/apperrors"
	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/services"
)

type ChartServiceTestSuite struct {
	suite.Suite
	mockRecognitions *MockRecognitionSource
	mockScope        *MockScopeService
	service          *services.ChartService
}

func (suite *ChartServiceTestSuite) SetupTest() {
	suite.mockRecognitions = new(MockRecognitionSource)
	suite.mockScope = new(MockScopeService)
	suite.service = services.NewChartService(suite.mockRecognitions, suite.mockScope)
}

func chartInstant(year int, month time.Month) int64 {
	return time.Date(year, month, 15, 12, 0, 0, 0, time.Local).Unix()
}

func chartMonth(year int, month time.Month) string {
	return time.Unix(chartInstant(year, month), 0).Format("2006-01")
}

func chartRecognitions() []domain.Recognition {
	return []domain.Recognition{
		{ID: "a", SenderName: "Alice Smith", RecipientName: "Bob Jones", RecipientRole: domain.RoleEmployee, SentAt: chartInstant(2026, time.March), AwardPoints: 5},
		{ID: "b", SenderName: "Alice Smith", RecipientName: "Carol White", RecipientRole: domain.RoleManager, SentAt: chartInstant(2026, time.March), AwardPoints: 3},
		{ID: "c", SenderName: "Alice Smith", RecipientName: "Bob Jones", RecipientRole: domain.RoleEmployee, SentAt: chartInstant(2026, time.April), AwardPoints: 2},
		{ID: "d", SenderName: "Omar Other", RecipientName: "Pete Foreign", RecipientRole: domain.RoleEmployee, SentAt: chartInstant(2026, time.April), AwardPoints: 9},
	}
}

func (suite *ChartServiceTestSuite) TestRecognitionCharts_AggregatesVisibleRecords() {
	ctx := context.Background()
	user := domain.User{Email: "alice@corp.test", Role: domain.RoleTeamlead}

	suite.mockScope.On("ResolveScope", ctx, user).Return(domain.NewScopeSet("Alice Smith"), nil).Once()
	suite.mockRecognitions.On("ListRecognitions", ctx).Return(chartRecognitions(), nil).Once()

	data, err := suite.service.RecognitionCharts(ctx, user, domain.ChartSelection{})

	suite.Require().NoError(err)
	suite.Require().Len(data.Months, 2)
	suite.Equal(chartMonth(2026, time.March), data.Months[0].Month)
	suite.Equal(2, data.Months[0].Recognitions)
	suite.Equal("8", data.Months[0].Points.String())

	suite.Require().Len(data.Roles, 2)
	suite.Equal("employee", data.Roles[0].Role)
	suite.Equal(2, data.Roles[0].Value)
}

func (suite *ChartServiceTestSuite) TestRecognitionCharts_SelectionsCrossFilter() {
	ctx := context.Background()
	user := domain.User{Email: "root@corp.test", Role: domain.RoleAdmin}
	sel := domain.ChartSelection{Month: chartMonth(2026, time.March), Role: "employee"}

	suite.mockScope.On("ResolveScope", ctx, user).Return(domain.UnscopedSet(), nil).Once()
	suite.mockRecognitions.On("ListRecognitions", ctx).Return(chartRecognitions(), nil).Once()

	data, err := suite.service.RecognitionCharts(ctx, user, sel)

	suite.Require().NoError(err)

	// month series narrowed by the selected role: only employee recognitions
	suite.Require().Len(data.Months, 2)
	suite.Equal(chartMonth(2026, time.March), data.Months[0].Month)
	suite.Equal(1, data.Months[0].Recognitions)
	suite.Equal(chartMonth(2026, time.April), data.Months[1].Month)
	suite.Equal(2, data.Months[1].Recognitions)
	for _, m := range data.Months {
		suite.Equal(map[string]int{"employee": m.Recognitions}, m.Roles)
	}

	// role series narrowed by the selected month: March only
	suite.Require().Len(data.Roles, 2)
	suite.Equal(1, data.Roles[0].Value)
	suite.Equal(1, data.Roles[1].Value)

	suite.Equal(sel, data.Selection)
}

func (suite *ChartServiceTestSuite) TestRecognitionCharts_FetchFailureYieldsEmptySeries() {
	ctx := context.Background()
	user := domain.User{Email: "root@corp.test", Role: domain.RoleAdmin}
	sel := domain.ChartSelection{Role: "employee"}

	suite.mockScope.On("ResolveScope", ctx, user).Return(domain.UnscopedSet(), nil).Once()
	suite.mockRecognitions.On("ListRecognitions", ctx).Return(nil, apperrors.ErrNetwork).Once()

	data, err := suite.service.RecognitionCharts(ctx, user, sel)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNetwork)
	suite.Empty(data.Months)
	suite.Empty(data.Roles)
	suite.Equal(sel, data.Selection)
}

func TestChartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChartServiceTestSuite))
}
