package dto

import (
	"time"

	"github.com/myteamhq/myteam_console/internal/core/domain"
)

// EmployeeResponse is one row of the employees table.
type EmployeeResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	UnitID      string `json:"unitId,omitempty"`
	ManagerID   string `json:"managerId,omitempty"`
	JoiningDate string `json:"joiningDate,omitempty"` // YYYY-MM-DD
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(emp domain.Employee) EmployeeResponse {
	joining := ""
	if !emp.JoiningDate.IsZero() {
		joining = emp.JoiningDate.Format(time.DateOnly)
	}
	return EmployeeResponse{
		ID:          emp.ID,
		FirstName:   emp.FirstName,
		LastName:    emp.LastName,
		Email:       emp.Email,
		Role:        string(emp.Role),
		UnitID:      emp.UnitID,
		ManagerID:   emp.ManagerID,
		JoiningDate: joining,
	}
}

// EmployeeViewResponse is the employees table view.
type EmployeeViewResponse struct {
	Items []EmployeeResponse `json:"items"`
	PageMeta
	Message string `json:"message,omitempty"`
}

func ToEmployeeViewResponse(res domain.ViewResult[domain.Employee], message string) EmployeeViewResponse {
	items := make([]EmployeeResponse, len(res.Items))
	for i, emp := range res.Items {
		items[i] = ToEmployeeResponse(emp)
	}
	return EmployeeViewResponse{Items: items, PageMeta: pageMetaOf(res), Message: message}
}
