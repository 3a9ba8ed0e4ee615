package services

import (
	"context"
	"fmt"

	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/ports/repositories"
	portssvc "github.com/myteamhq/myteam_console/internal/core/ports/services"
	"github.com/myteamhq/myteam_console/internal/core/viewengine"
)

// LeaderboardService serves the top-senders and top-recipients panels:
// search, numeric point sort and optional top-N truncation, applied in
// that order so "top 5" means the top of the sorted, searched list.
type LeaderboardService struct {
	source repositories.LeaderboardSource
}

func NewLeaderboardService(source repositories.LeaderboardSource) *LeaderboardService {
	return &LeaderboardService{source: source}
}

func (s *LeaderboardService) Panel(ctx context.Context, kind portssvc.LeaderboardKind, q portssvc.LeaderboardQuery) ([]domain.LeaderboardEntry, error) {
	var entries []domain.LeaderboardEntry
	var err error
	switch kind {
	case portssvc.TopSenders:
		entries, err = s.source.TopSenders(ctx)
	case portssvc.TopRecipients:
		entries, err = s.source.TopRecipients(ctx)
	default:
		return []domain.LeaderboardEntry{}, fmt.Errorf("unknown leaderboard kind %q", kind)
	}
	if err != nil {
		return []domain.LeaderboardEntry{}, fmt.Errorf("failed to fetch %s leaderboard: %w", kind, err)
	}

	entries = viewengine.Search(entries, q.Search)
	entries = viewengine.Sort(entries, "points", q.SortOrder)
	if q.TopN > 0 && q.TopN < len(entries) {
		entries = entries[:q.TopN]
	}
	return entries, nil
}
