package services

import (
	"context"
	"fmt"

	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/ports/repositories"
)

// ScopeService derives the set of people whose records a session user may
// view. The scope is recomputed from a fresh roster on every call; nothing
// is cached, so it can never go stale across user changes.
type ScopeService struct {
	roster repositories.EmployeeSource
}

func NewScopeService(roster repositories.EmployeeSource) *ScopeService {
	return &ScopeService{roster: roster}
}

// ResolveScope fetches the roster and derives the user's scope. Admin needs
// no roster lookup and resolves to the unscoped sentinel even when the
// backend is down. For every other role a roster failure fails closed: an
// empty scope is returned alongside the error, so no records leak while the
// caller surfaces the problem.
func (s *ScopeService) ResolveScope(ctx context.Context, user domain.User) (domain.ScopeSet, error) {
	if user.Role == domain.RoleAdmin {
		return domain.UnscopedSet(), nil
	}
	roster, err := s.roster.ListEmployees(ctx)
	if err != nil {
		return domain.NewScopeSet(), fmt.Errorf("failed to fetch roster for scope resolution: %w", err)
	}
	return BuildScope(user, roster), nil
}

// BuildScope is the pure scope derivation over an already-fetched roster:
//
//	employee: the user's own name, if their roster record exists
//	teamlead: own name plus direct reports (managerId == own id)
//	manager:  everyone sharing the unit, unit taken from the roster record
//	          with the session claim as fallback
//	admin:    unscoped
//
// Unknown roles resolve to an empty scope.
func BuildScope(user domain.User, roster []domain.Employee) domain.ScopeSet {
	if user.Role == domain.RoleAdmin {
		return domain.UnscopedSet()
	}

	var self *domain.Employee
	for i := range roster {
		if roster[i].EmailMatches(user.Email) {
			self = &roster[i]
			break
		}
	}

	switch user.Role {
	case domain.RoleEmployee:
		if self == nil {
			return domain.NewScopeSet()
		}
		return domain.NewScopeSet(self.FullName())

	case domain.RoleTeamlead:
		if self == nil {
			return domain.NewScopeSet()
		}
		// Some backend shapes omit the teamlead's own id; their managerId
		// field has been observed carrying it instead.
		selfID := self.ID
		if selfID == "" {
			selfID = self.ManagerID
		}
		names := []string{self.FullName()}
		if selfID != "" {
			for _, e := range roster {
				if e.ManagerID != "" && e.ManagerID == selfID {
					names = append(names, e.FullName())
				}
			}
		}
		return domain.NewScopeSet(names...)

	case domain.RoleManager:
		unitID := user.UnitID
		if self != nil && self.UnitID != "" {
			unitID = self.UnitID
		}
		var names []string
		if self != nil {
			names = append(names, self.FullName())
		}
		if unitID != "" {
			for _, e := range roster {
				if e.UnitID == unitID {
					names = append(names, e.FullName())
				}
			}
		}
		return domain.NewScopeSet(names...)
	}

	return domain.NewScopeSet()
}
