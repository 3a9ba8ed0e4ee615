package backend

import (
	"context"
	"fmt"

	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/ports/repositories"
)

var _ repositories.RecognitionTypeSource = (*Client)(nil)

type recognitionTypeDTO struct {
	ID            flexString `json:"id"`
	TypeName      string     `json:"typeName"`
	CreatedBy     string     `json:"createdBy"`
	CreatedAt     string     `json:"createdAt"`
	Description   string     `json:"description"`
	DefaultPoints flexFloat  `json:"defaultPoints"`
}

func (d recognitionTypeDTO) toDomain() domain.RecognitionType {
	return domain.RecognitionType{
		ID:            string(d.ID),
		TypeName:      d.TypeName,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     parseDate(d.CreatedAt),
		Description:   d.Description,
		DefaultPoints: float64(d.DefaultPoints),
	}
}

// ListRecognitionTypes fetches the configurable award types.
func (c *Client) ListRecognitionTypes(ctx context.Context) ([]domain.RecognitionType, error) {
	dtos, err := fetchList[recognitionTypeDTO](ctx, c, "/recognition-types")
	if err != nil {
		return nil, fmt.Errorf("list recognition types: %w", err)
	}
	types := make([]domain.RecognitionType, len(dtos))
	for i, d := range dtos {
		types[i] = d.toDomain()
	}
	return types, nil
}
