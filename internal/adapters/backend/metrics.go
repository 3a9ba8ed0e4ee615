package backend

import (
	"context"
	"fmt"

	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/ports/repositories"
)

var _ repositories.MetricsSource = (*Client)(nil)

type metricsSummaryDTO struct {
	Totals struct {
		Count flexInt64 `json:"count"`
	} `json:"totals"`
}

// Summary fetches the backend-wide recognition totals.
func (c *Client) Summary(ctx context.Context) (domain.MetricsSummary, error) {
	var dto metricsSummaryDTO
	if err := c.getJSON(ctx, "/metrics/summary", nil, &dto); err != nil {
		return domain.MetricsSummary{}, fmt.Errorf("fetch metrics summary: %w", err)
	}
	return domain.MetricsSummary{Count: int(dto.Totals.Count)}, nil
}
