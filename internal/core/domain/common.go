package domain

import "strings"

// Role is the organisational role carried by both session users and
// employee records. Roles arrive from the backend in mixed case.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleTeamlead Role = "teamlead"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// ParseRole normalises a raw role string to its canonical lowercase form.
// Unknown values are preserved (lowercased) rather than rejected so that
// backend drift never breaks decoding; policy checks fail closed on them.
func ParseRole(raw string) Role {
	return Role(strings.ToLower(strings.TrimSpace(raw)))
}

// Known reports whether the role is one of the four roles the console
// understands.
func (r Role) Known() bool {
	switch r {
	case RoleEmployee, RoleTeamlead, RoleManager, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
