package domain

// User is the authenticated session identity, established once from the
// console JWT and replaced wholesale on login/logout. It is never mutated
// in place.
type User struct {
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	UnitID string `json:"unitId,omitempty"`
}
