package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/ports/repositories"
)

var _ repositories.EmployeeSource = (*Client)(nil)

// employeeDTO is the wire shape of a roster entry. The upstream has served
// the employee id under both "id" and "employeeId"; canonicalisation into a
// single ID happens here so the core never sees the drift.
type employeeDTO struct {
	ID          flexString `json:"id"`
	EmployeeID  flexString `json:"employeeId"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	UnitID      flexString `json:"unitId"`
	ManagerID   flexString `json:"managerId"`
	JoiningDate string     `json:"joiningDate"`
}

func (d employeeDTO) toDomain() domain.Employee {
	id := string(d.ID)
	if id == "" {
		id = string(d.EmployeeID)
	}
	return domain.Employee{
		ID:          id,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Role:        domain.ParseRole(d.Role),
		UnitID:      string(d.UnitID),
		ManagerID:   string(d.ManagerID),
		JoiningDate: parseDate(d.JoiningDate),
	}
}

// ListEmployees fetches the full roster.
func (c *Client) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	dtos, err := fetchList[employeeDTO](ctx, c, "/employees")
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	employees := make([]domain.Employee, len(dtos))
	for i, d := range dtos {
		employees[i] = d.toDomain()
	}
	return employees, nil
}

// parseDate accepts the date formats the upstream has been seen to emit;
// anything else decodes to the zero time.
func parseDate(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
