package domain

import (
	"strings"
	"time"
)

// Employee is a roster entry. ManagerID forms a tree: a teamlead's direct
// reports are the employees whose ManagerID equals the teamlead's own ID.
// UnitID groups employees (and their manager) into an organisational unit.
type Employee struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	UnitID      string    `json:"unitId,omitempty"`
	ManagerID   string    `json:"managerId,omitempty"`
	JoiningDate time.Time `json:"joiningDate"`
}

// FullName is the trimmed "First Last" string. Recognitions reference
// employees by this name, so it is the join key for scope checks.
func (e Employee) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(e.FirstName) + " " + strings.TrimSpace(e.LastName))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailMatches compares two email addresses case-insensitively, ignoring
// surrounding whitespace.
func (e Employee) EmailMatches(email string) bool {
	return normalizeEmail(e.Email) != "" && normalizeEmail(e.Email) == normalizeEmail(email)
}

// FieldValue projects a field by its wire name, mirroring the employee
// table columns.
func (e Employee) FieldValue(field string) (string, bool) {
	switch field {
	case "id":
		return present(e.ID)
	case "firstName":
		return present(e.FirstName)
	case "lastName":
		return present(e.LastName)
	case "email":
		return present(e.Email)
	case "role":
		return present(string(e.Role))
	case "unitId":
		return present(e.UnitID)
	case "managerId":
		return present(e.ManagerID)
	case "joiningDate":
		if e.JoiningDate.IsZero() {
			return "", false
		}
		return e.JoiningDate.Format("2006-01-02"), true
	}
	return "", false
}

func (e Employee) SearchValues() []string {
	return []string{e.FirstName, e.LastName, e.Email, string(e.Role), e.UnitID, e.ManagerID}
}

// ScopeKeys: an employee row is visible when the employee themselves is in
// scope.
func (e Employee) ScopeKeys() []string {
	return []string{e.FullName()}
}
