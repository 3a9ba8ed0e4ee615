package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myteamhq/myteam_console/internal/apperrors"
	portssvc "github.com/myteamhq/myteam_console/internal/core/ports/services"
	"github.com/myteamhq/myteam_console/internal/dto"
	"github.com/myteamhq/myteam_console/internal/middleware"
)

// Table views degrade rather than fail: when the upstream fetch breaks the
// handler answers 200 with an empty page and a user-facing message, so the
// console keeps rendering.
const fetchFailedMessage = "Failed to load data from the backend. Please try again later."

// viewHandler handles HTTP requests for the scoped table views.
type viewHandler struct {
	viewService portssvc.ViewSvcFacade
}

func newViewHandler(vs portssvc.ViewSvcFacade) *viewHandler {
	return &viewHandler{
		viewService: vs,
	}
}

// registerViewRoutes registers routes for the table views.
func registerViewRoutes(rg *gin.RouterGroup, viewService portssvc.ViewSvcFacade) {
	h := newViewHandler(viewService)

	views := rg.Group("/views")
	{
		views.GET("/recognitions", h.getRecognitionView)
		views.GET("/employees", h.getEmployeeView)
		views.GET("/recognition-types", h.getRecognitionTypeView)
	}
}

// getRecognitionView godoc
// @Summary Recognitions table view
// @Description Returns the session user's scoped, searched, sorted and paginated recognitions
// @Tags views
// @Produce json
// @Param search query string false "Free-text search"
// @Param sortField query string false "Field to sort by"
// @Param sortOrder query string false "asc or desc" Enums(asc, desc)
// @Param filterField query string false "Field for exact-match filter"
// @Param filterValue query string false "Value for exact-match filter"
// @Param page query int false "Zero-based page index"
// @Param size query int false "Page size (1-100)"
// @Param month query string false "Chart drill-down month (YYYY-MM)"
// @Param role query string false "Chart drill-down recipient role"
// @Success 200 {object} dto.RecognitionViewResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /views/recognitions [get]
func (h *viewHandler) getRecognitionView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		logger.Error("User not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ViewStateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for recognition view", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	res, err := h.viewService.RecognitionView(c.Request.Context(), user, req.ToViewState())
	if err != nil {
		if errors.Is(err, apperrors.ErrNetwork) || errors.Is(err, apperrors.ErrShapeMismatch) {
			logger.Warn("Recognition view degraded to empty page", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ToRecognitionViewResponse(res, fetchFailedMessage))
			return
		}
		logger.Error("Failed to derive recognition view", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recognitions"})
		return
	}

	logger.Info("Recognition view served",
		slog.Int("items", len(res.Items)),
		slog.Int("page", res.Page),
		slog.Int("total_pages", res.TotalPages))
	c.JSON(http.StatusOK, dto.ToRecognitionViewResponse(res, ""))
}

// getEmployeeView godoc
// @Summary Employees table view
// @Description Returns the scoped employees table for manager and admin sessions
// @Tags views
// @Produce json
// @Param search query string false "Free-text search"
// @Param sortField query string false "Field to sort by"
// @Param sortOrder query string false "asc or desc" Enums(asc, desc)
// @Param filterField query string false "Field for exact-match filter"
// @Param filterValue query string false "Value for exact-match filter"
// @Param page query int false "Zero-based page index"
// @Param size query int false "Page size (1-100)"
// @Success 200 {object} dto.EmployeeViewResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Role may not access this page"
// @Security BearerAuth
// @Router /views/employees [get]
func (h *viewHandler) getEmployeeView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		logger.Error("User not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ViewStateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for employee view", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	res, err := h.viewService.EmployeeView(c.Request.Context(), user, req.ToViewState())
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Employee view denied", slog.String("role", string(user.Role)))
			c.JSON(http.StatusForbidden, gin.H{"error": "Your role may not access the employees page"})
			return
		}
		if errors.Is(err, apperrors.ErrNetwork) || errors.Is(err, apperrors.ErrShapeMismatch) {
			logger.Warn("Employee view degraded to empty page", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ToEmployeeViewResponse(res, fetchFailedMessage))
			return
		}
		logger.Error("Failed to derive employee view", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load employees"})
		return
	}

	logger.Info("Employee view served",
		slog.Int("items", len(res.Items)),
		slog.Int("page", res.Page),
		slog.Int("total_pages", res.TotalPages))
	c.JSON(http.StatusOK, dto.ToEmployeeViewResponse(res, ""))
}

// getRecognitionTypeView godoc
// @Summary Recognition types table view
// @Description Returns the recognition types table for manager and admin sessions
// @Tags views
// @Produce json
// @Param search query string false "Free-text search"
// @Param sortField query string false "Field to sort by"
// @Param sortOrder query string false "asc or desc" Enums(asc, desc)
// @Param filterField query string false "Field for exact-match filter"
// @Param filterValue query string false "Value for exact-match filter"
// @Param page query int false "Zero-based page index"
// @Param size query int false "Page size (1-100)"
// @Success 200 {object} dto.RecognitionTypeViewResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Role may not access this page"
// @Security BearerAuth
// @Router /views/recognition-types [get]
func (h *viewHandler) getRecognitionTypeView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		logger.Error("User not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ViewStateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for recognition type view", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	res, err := h.viewService.RecognitionTypeView(c.Request.Context(), user, req.ToViewState())
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Recognition type view denied", slog.String("role", string(user.Role)))
			c.JSON(http.StatusForbidden, gin.H{"error": "Your role may not access the recognition types page"})
			return
		}
		if errors.Is(err, apperrors.ErrNetwork) || errors.Is(err, apperrors.ErrShapeMismatch) {
			logger.Warn("Recognition type view degraded to empty page", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ToRecognitionTypeViewResponse(res, fetchFailedMessage))
			return
		}
		logger.Error("Failed to derive recognition type view", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recognition types"})
		return
	}

	logger.Info("Recognition type view served",
		slog.Int("items", len(res.Items)),
		slog.Int("page", res.Page),
		slog.Int("total_pages", res.TotalPages))
	c.JSON(http.StatusOK, dto.ToRecognitionTypeViewResponse(res, ""))
}
