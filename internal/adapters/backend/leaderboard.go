package backend

import (
	"context"
	"fmt"

	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/ports/repositories"
)

var _ repositories.LeaderboardSource = (*Client)(nil)

type leaderboardEntryDTO struct {
	Name   string      `json:"name"`
	Points flexDecimal `json:"points"`
}

func (d leaderboardEntryDTO) toDomain() domain.LeaderboardEntry {
	return domain.LeaderboardEntry{Name: d.Name, Points: d.Points.Decimal}
}

// TopSenders fetches the precomputed top-senders panel.
func (c *Client) TopSenders(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return c.leaderboard(ctx, "/leaderboard/top-senders")
}

// TopRecipients fetches the precomputed top-recipients panel.
func (c *Client) TopRecipients(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return c.leaderboard(ctx, "/leaderboard/top-recipients")
}

func (c *Client) leaderboard(ctx context.Context, path string) ([]domain.LeaderboardEntry, error) {
	dtos, err := fetchList[leaderboardEntryDTO](ctx, c, path)
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard: %w", err)
	}
	entries := make([]domain.LeaderboardEntry, len(dtos))
	for i, d := range dtos {
		entries[i] = d.toDomain()
	}
	return entries, nil
}
