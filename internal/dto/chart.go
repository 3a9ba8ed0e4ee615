package dto

import (
	"github.com/myteamhq/myteam_console/internal/core/domain"
	portssvc "github.com/myteamhq/myteam_console/internal/core/ports/services"
)

// ChartRequest binds the drill-down state: the current selection plus an
// optional bucket click. Clicks toggle — selecting a new bucket replaces
// the current one, re-clicking the active bucket clears it.
type ChartRequest struct {
	Month      string `form:"month" binding:"omitempty,chartmonth"`
	Role       string `form:"role"`
	ClickMonth string `form:"clickMonth" binding:"omitempty,chartmonth"`
	ClickRole  string `form:"clickRole"`
}

// ToSelection applies any click to the current selection.
func (r ChartRequest) ToSelection() domain.ChartSelection {
	sel := domain.ChartSelection{Month: r.Month, Role: r.Role}
	if r.ClickMonth != "" || r.ClickRole != "" {
		sel = sel.Toggle(domain.ChartSelection{Month: r.ClickMonth, Role: r.ClickRole})
	}
	return sel
}

// MonthBucketResponse is one month of the activity chart.
type MonthBucketResponse struct {
	Month        string         `json:"month"`
	Recognitions int            `json:"recognitions"`
	Points       string         `json:"points"`
	Roles        map[string]int `json:"roles"`
}

// RoleBucketResponse is one slice of the recognitions-by-role pie.
type RoleBucketResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Role  string `json:"role"`
}

// ChartResponse carries both series plus the selection they were computed
// under.
type ChartResponse struct {
	Months    []MonthBucketResponse `json:"months"`
	Roles     []RoleBucketResponse  `json:"roles"`
	Selection ChartRequest          `json:"selection"`
	Message   string                `json:"message,omitempty"`
}

func ToChartResponse(data portssvc.ChartData, message string) ChartResponse {
	months := make([]MonthBucketResponse, len(data.Months))
	for i, b := range data.Months {
		months[i] = MonthBucketResponse{
			Month:        b.Month,
			Recognitions: b.Recognitions,
			Points:       b.Points.String(),
			Roles:        b.Roles,
		}
	}
	roles := make([]RoleBucketResponse, len(data.Roles))
	for i, b := range data.Roles {
		roles[i] = RoleBucketResponse{Name: b.Name, Value: b.Value, Role: b.Role}
	}
	return ChartResponse{
		Months:    months,
		Roles:     roles,
		Selection: ChartRequest{Month: data.Selection.Month, Role: data.Selection.Role},
		Message:   message,
	}
}
