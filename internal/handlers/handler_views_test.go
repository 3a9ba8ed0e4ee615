package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/myteamhq/myteam_console/internal/apperrors"
	"github.com/myteamhq/myteam_console/internal/core/domain"
	portssvc "github.com/myteamhq/myteam_console/internal/core/ports/services"
	"github.com/myteamhq/myteam_console/internal/dto"
	"github.com/myteamhq/myteam_console/internal/handlers"
	"github.com/myteamhq/myteam_console/internal/middleware"
	"github.com/myteamhq/myteam_console/internal/platform/config"
)

const (
	testJWTSecret = "test-secret"
	testIssuer    = "myteam-console"
)

// --- Mock ViewService ---
type MockViewService struct {
	mock.Mock
}

func (m *MockViewService) RecognitionView(ctx context.Context, user domain.User, state domain.ViewState) (domain.ViewResult[domain.Recognition], error) {
	args := m.Called(ctx, user, state)
	return args.Get(0).(domain.ViewResult[domain.Recognition]), args.Error(1)
}

func (m *MockViewService) EmployeeView(ctx context.Context, user domain.User, state domain.ViewState) (domain.ViewResult[domain.Employee], error) {
	args := m.Called(ctx, user, state)
	return args.Get(0).(domain.ViewResult[domain.Employee]), args.Error(1)
}

func (m *MockViewService) RecognitionTypeView(ctx context.Context, user domain.User, state domain.ViewState) (domain.ViewResult[domain.RecognitionType], error) {
	args := m.Called(ctx, user, state)
	return args.Get(0).(domain.ViewResult[domain.RecognitionType]), args.Error(1)
}

var _ portssvc.ViewSvcFacade = (*MockViewService)(nil)

// --- Mock ScopeService ---
type MockScopeService struct {
	mock.Mock
}

func (m *MockScopeService) ResolveScope(ctx context.Context, user domain.User) (domain.ScopeSet, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.ScopeSet), args.Error(1)
}

// --- Mock ChartService ---
type MockChartService struct {
	mock.Mock
}

func (m *MockChartService) RecognitionCharts(ctx context.Context, user domain.User, sel domain.ChartSelection) (portssvc.ChartData, error) {
	args := m.Called(ctx, user, sel)
	return args.Get(0).(portssvc.ChartData), args.Error(1)
}

// --- Mock LeaderboardService ---
type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) Panel(ctx context.Context, kind portssvc.LeaderboardKind, q portssvc.LeaderboardQuery) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, kind, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context, user domain.User) (domain.DashboardSummary, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.DashboardSummary), args.Error(1)
}

// --- Test Suite ---
type ViewHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockView *MockViewService
}

func (suite *ViewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockView = new(MockViewService)
	container := &portssvc.ServiceContainer{
		Scope:       new(MockScopeService),
		View:        suite.mockView,
		Chart:       new(MockChartService),
		Leaderboard: new(MockLeaderboardService),
		Dashboard:   new(MockDashboardService),
	}

	cfg := &config.Config{
		JWTSecret:    testJWTSecret,
		JWTIssuer:    testIssuer,
		IsProduction: true, // skip swagger wiring in tests
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *ViewHandlerTestSuite) bearerToken(email string, role domain.Role) string {
	claims := middleware.SessionClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *ViewHandlerTestSuite) serve(method, target, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ViewHandlerTestSuite) TestGetRecognitionView_Success() {
	res := domain.ViewResult[domain.Recognition]{
		Items:      []domain.Recognition{{ID: "r1", SenderName: "Alice Smith", RecipientName: "Bob Jones", AwardPoints: 10}},
		Page:       0,
		PageSize:   20,
		TotalPages: 1,
		TotalItems: 1,
	}
	suite.mockView.On("RecognitionView", mock.Anything,
		mock.MatchedBy(func(u domain.User) bool { return u.Email == "tara@corp.test" && u.Role == domain.RoleTeamlead }),
		mock.AnythingOfType("domain.ViewState"),
	).Return(res, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/views/recognitions?search=alice", suite.bearerToken("tara@corp.test", domain.RoleTeamlead))

	suite.Equal(http.StatusOK, w.Code)
	var body dto.RecognitionViewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Items, 1)
	suite.Equal("r1", body.Items[0].ID)
	suite.Equal(1, body.TotalPages)
	suite.Empty(body.Message)
	suite.mockView.AssertExpectations(suite.T())
}

func (suite *ViewHandlerTestSuite) TestGetRecognitionView_MissingTokenIsUnauthorized() {
	w := suite.serve(http.MethodGet, "/api/v1/views/recognitions", "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ViewHandlerTestSuite) TestGetRecognitionView_InvalidSortOrderIsBadRequest() {
	w := suite.serve(http.MethodGet, "/api/v1/views/recognitions?sortOrder=sideways", suite.bearerToken("tara@corp.test", domain.RoleTeamlead))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ViewHandlerTestSuite) TestGetRecognitionView_DrillDownParamsReachTheService() {
	res := domain.ViewResult[domain.Recognition]{Items: []domain.Recognition{}, PageSize: 20, TotalPages: 1}
	suite.mockView.On("RecognitionView", mock.Anything, mock.Anything,
		mock.MatchedBy(func(s domain.ViewState) bool {
			return s.Selection.Month == "2026-03" && s.Selection.Role == "employee"
		}),
	).Return(res, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/views/recognitions?month=2026-03&role=employee", suite.bearerToken("tara@corp.test", domain.RoleTeamlead))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockView.AssertExpectations(suite.T())
}

func (suite *ViewHandlerTestSuite) TestGetRecognitionView_MalformedMonthIsBadRequest() {
	w := suite.serve(http.MethodGet, "/api/v1/views/recognitions?month=march", suite.bearerToken("tara@corp.test", domain.RoleTeamlead))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ViewHandlerTestSuite) TestGetRecognitionView_BackendFailureDegradesTo200() {
	empty := domain.ViewResult[domain.Recognition]{Items: []domain.Recognition{}, TotalPages: 1}
	suite.mockView.On("RecognitionView", mock.Anything, mock.Anything, mock.Anything).
		Return(empty, fmt.Errorf("failed to fetch recognitions: %w", apperrors.ErrNetwork)).Once()

	w := suite.serve(http.MethodGet, "/api/v1/views/recognitions", suite.bearerToken("tara@corp.test", domain.RoleTeamlead))

	suite.Equal(http.StatusOK, w.Code)
	var body dto.RecognitionViewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Empty(body.Items)
	suite.NotEmpty(body.Message)
}

func (suite *ViewHandlerTestSuite) TestGetEmployeeView_ForbiddenRole() {
	empty := domain.ViewResult[domain.Employee]{Items: []domain.Employee{}, TotalPages: 1}
	suite.mockView.On("EmployeeView", mock.Anything, mock.Anything, mock.Anything).
		Return(empty, apperrors.ErrForbidden).Once()

	w := suite.serve(http.MethodGet, "/api/v1/views/employees", suite.bearerToken("evan@corp.test", domain.RoleEmployee))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *ViewHandlerTestSuite) TestGetMe_ReturnsTokenIdentity() {
	w := suite.serve(http.MethodGet, "/api/auth/me", suite.bearerToken("mona@corp.test", domain.RoleManager))

	suite.Equal(http.StatusOK, w.Code)
	var body dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("mona@corp.test", body.Email)
	suite.Equal("manager", body.Role)
}

func (suite *ViewHandlerTestSuite) TestGetMe_UnknownRoleStillAuthenticates() {
	w := suite.serve(http.MethodGet, "/api/auth/me", suite.bearerToken("temp@corp.test", domain.Role("contractor")))

	suite.Equal(http.StatusOK, w.Code)
	var body dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("contractor", body.Role)
}

func (suite *ViewHandlerTestSuite) TestHealth_IsPublic() {
	w := suite.serve(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestViewHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ViewHandlerTestSuite))
}
