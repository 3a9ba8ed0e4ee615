package dto

import "github.com/myteamhq/myteam_console/internal/core/domain"

// RecognitionResponse is one row of the recognitions table.
type RecognitionResponse struct {
	ID                  string  `json:"id"`
	RecognitionTypeName string  `json:"recognitionTypeName"`
	Category            string  `json:"category"`
	Level               string  `json:"level,omitempty"`
	AwardPoints         float64 `json:"awardPoints"`
	SenderName          string  `json:"senderName"`
	RecipientName       string  `json:"recipientName"`
	RecipientRole       string  `json:"recipientRole,omitempty"`
	Message             string  `json:"message"`
	SentAt              int64   `json:"sentAt,omitempty"`
	ApprovalStatus      string  `json:"approvalStatus,omitempty"`
	RejectionReason     string  `json:"rejectionReason,omitempty"`
}

// ToRecognitionResponse converts a domain.Recognition to its response DTO.
func ToRecognitionResponse(rec domain.Recognition) RecognitionResponse {
	return RecognitionResponse{
		ID:                  rec.ID,
		RecognitionTypeName: rec.RecognitionTypeName,
		Category:            rec.Category,
		Level:               rec.Level,
		AwardPoints:         rec.AwardPoints,
		SenderName:          rec.SenderName,
		RecipientName:       rec.RecipientName,
		RecipientRole:       string(rec.RecipientRole),
		Message:             rec.Message,
		SentAt:              rec.SentAt,
		ApprovalStatus:      rec.ApprovalStatus,
		RejectionReason:     rec.RejectionReason,
	}
}

// RecognitionViewResponse is the recognitions table view: the visible page
// plus recomputed pagination metadata.
type RecognitionViewResponse struct {
	Items []RecognitionResponse `json:"items"`
	PageMeta
	Message string `json:"message,omitempty"`
}

func ToRecognitionViewResponse(res domain.ViewResult[domain.Recognition], message string) RecognitionViewResponse {
	items := make([]RecognitionResponse, len(res.Items))
	for i, rec := range res.Items {
		items[i] = ToRecognitionResponse(rec)
	}
	return RecognitionViewResponse{Items: items, PageMeta: pageMetaOf(res), Message: message}
}
