package dto

import "github.com/myteamhq/myteam_console/internal/core/domain"

// UserResponse is the session identity served by /api/auth/me.
type UserResponse struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	UnitID string `json:"unitId,omitempty"`
}

func ToUserResponse(user domain.User) UserResponse {
	return UserResponse{
		Email:  user.Email,
		Role:   string(user.Role),
		UnitID: user.UnitID,
	}
}

// DashboardResponse is the composed dashboard summary.
type DashboardResponse struct {
	TotalRecognitions   int    `json:"totalRecognitions"`
	VisibleRecognitions int    `json:"visibleRecognitions"`
	ScopeSize           int    `json:"scopeSize"`
	Unscoped            bool   `json:"unscoped"`
	Message             string `json:"message,omitempty"`
}

func ToDashboardResponse(summary domain.DashboardSummary, message string) DashboardResponse {
	return DashboardResponse{
		TotalRecognitions:   summary.TotalRecognitions,
		VisibleRecognitions: summary.VisibleRecognitions,
		ScopeSize:           summary.ScopeSize,
		Unscoped:            summary.Unscoped,
		Message:             message,
	}
}
