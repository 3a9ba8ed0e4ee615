package backend

import (
	"context"
	"fmt"

	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/ports/repositories"
)

var _ repositories.RecognitionSource = (*Client)(nil)

type recognitionDTO struct {
	ID                  flexString `json:"id"`
	RecognitionTypeName string     `json:"recognitionTypeName"`
	Category            string     `json:"category"`
	Level               string     `json:"level"`
	AwardPoints         flexFloat  `json:"awardPoints"`
	SenderName          string     `json:"senderName"`
	RecipientName       string     `json:"recipientName"`
	RecipientRole       string     `json:"recipientRole"`
	Message             string     `json:"message"`
	SentAt              flexInt64  `json:"sentAt"`
	CreatedAt           flexInt64  `json:"createdAt"`
	ApprovalStatus      string     `json:"approvalStatus"`
	RejectionReason     string     `json:"rejectionReason"`
}

func (d recognitionDTO) toDomain() domain.Recognition {
	role := domain.Role("")
	if d.RecipientRole != "" {
		role = domain.ParseRole(d.RecipientRole)
	}
	return domain.Recognition{
		ID:                  string(d.ID),
		RecognitionTypeName: d.RecognitionTypeName,
		Category:            d.Category,
		Level:               d.Level,
		AwardPoints:         float64(d.AwardPoints),
		SenderName:          d.SenderName,
		RecipientName:       d.RecipientName,
		RecipientRole:       role,
		Message:             d.Message,
		SentAt:              int64(d.SentAt),
		CreatedAt:           int64(d.CreatedAt),
		ApprovalStatus:      d.ApprovalStatus,
		RejectionReason:     d.RejectionReason,
	}
}

// ListRecognitions fetches all recognition records.
func (c *Client) ListRecognitions(ctx context.Context) ([]domain.Recognition, error) {
	dtos, err := fetchList[recognitionDTO](ctx, c, "/recognitions")
	if err != nil {
		return nil, fmt.Errorf("list recognitions: %w", err)
	}
	records := make([]domain.Recognition, len(dtos))
	for i, d := range dtos {
		records[i] = d.toDomain()
	}
	return records, nil
}
