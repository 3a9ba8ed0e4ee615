package dto

import "github.com/myteamhq/myteam_console/internal/core/domain"

// LeaderboardRequest binds the panel controls: top-N truncation, search
// and point sort direction.
type LeaderboardRequest struct {
	TopN      int    `form:"topN" binding:"omitempty,min=1"`
	Search    string `form:"search"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// LeaderboardEntryResponse is one leaderboard row. Points are rendered as
// a decimal string so fractional totals survive the round trip.
type LeaderboardEntryResponse struct {
	Name   string `json:"name"`
	Points string `json:"points"`
}

// LeaderboardResponse is one panel.
type LeaderboardResponse struct {
	Entries []LeaderboardEntryResponse `json:"entries"`
	Message string                     `json:"message,omitempty"`
}

func ToLeaderboardResponse(entries []domain.LeaderboardEntry, message string) LeaderboardResponse {
	out := make([]LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntryResponse{Name: e.Name, Points: e.Points.String()}
	}
	return LeaderboardResponse{Entries: out, Message: message}
}
