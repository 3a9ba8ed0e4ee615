package services

import (
	"context"

	"github.com/myteamhq/myteam_console/internal/core/domain"
)

// LeaderboardKind selects which upstream panel to serve.
type LeaderboardKind string

const (
	TopSenders    LeaderboardKind = "top-senders"
	TopRecipients LeaderboardKind = "top-recipients"
)

// LeaderboardQuery is the panel's control state: free-text search, point
// sort direction and optional top-N truncation (0 = no truncation).
type LeaderboardQuery struct {
	Search    string
	SortOrder string
	TopN      int
}

// LeaderboardSvcFacade serves the searched, sorted and truncated panels.
type LeaderboardSvcFacade interface {
	Panel(ctx context.Context, kind LeaderboardKind, q LeaderboardQuery) ([]domain.LeaderboardEntry, error)
}
