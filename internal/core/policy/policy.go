// Package policy holds the static role-to-permission tables for the admin
// console. Lookups are pure and fail closed: an unknown role, page or
// action is never permitted.
package policy

import "github.com/myteamhq/myteam_console/internal/core/domain"

// Pages the console can gate.
const (
	PageDashboard        = "dashboard"
	PageLeaderboard      = "leaderboard"
	PageEmployees        = "employees"
	PageRecognitions     = "recognitions"
	PageRecognitionTypes = "recognitionTypes"
)

// Actions the console can gate.
const (
	ActionSendRecognition       = "sendRecognition"
	ActionEditRecognition       = "editRecognition"
	ActionDeleteRecognition     = "deleteRecognition"
	ActionViewRecognition       = "viewRecognition"
	ActionViewEmployees         = "viewEmployees"
	ActionViewRecognitionTypes  = "viewRecognitionTypes"
	ActionCreateRecognitionType = "createRecognitionType"
	ActionEditRecognitionType   = "editRecognitionType"
	ActionDeleteRecognitionType = "deleteRecognitionType"
)

var pagePermissions = map[string][]domain.Role{
	PageDashboard:        {domain.RoleEmployee, domain.RoleTeamlead, domain.RoleManager, domain.RoleAdmin},
	PageLeaderboard:      {domain.RoleEmployee, domain.RoleTeamlead, domain.RoleManager, domain.RoleAdmin},
	PageEmployees:        {domain.RoleManager, domain.RoleAdmin},
	PageRecognitions:     {domain.RoleTeamlead, domain.RoleManager, domain.RoleAdmin},
	PageRecognitionTypes: {domain.RoleManager, domain.RoleAdmin},
}

var actionPermissions = map[string][]domain.Role{
	ActionSendRecognition:       {domain.RoleTeamlead, domain.RoleManager, domain.RoleAdmin},
	ActionEditRecognition:       {domain.RoleManager, domain.RoleAdmin},
	ActionDeleteRecognition:     {domain.RoleAdmin},
	ActionViewRecognition:       {domain.RoleEmployee, domain.RoleTeamlead, domain.RoleManager, domain.RoleAdmin},
	ActionViewEmployees:         {domain.RoleManager, domain.RoleAdmin},
	ActionViewRecognitionTypes:  {domain.RoleManager, domain.RoleAdmin},
	ActionCreateRecognitionType: {domain.RoleManager, domain.RoleAdmin},
	ActionEditRecognitionType:   {domain.RoleManager, domain.RoleAdmin},
	ActionDeleteRecognitionType: {domain.RoleManager, domain.RoleAdmin},
}

// CanAccessPage reports whether the role may open the named page.
func CanAccessPage(role domain.Role, page string) bool {
	return contains(pagePermissions[page], role)
}

// CanPerformAction reports whether the role may perform the named action.
func CanPerformAction(role domain.Role, action string) bool {
	return contains(actionPermissions[action], role)
}

func contains(roles []domain.Role, role domain.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
