package dto

import (
	"time"

	"github.com/myteamhq/myteam_console/internal/core/domain"
)

// RecognitionTypeResponse is one row of the recognition types table.
type RecognitionTypeResponse struct {
	ID            string  `json:"id"`
	TypeName      string  `json:"typeName"`
	CreatedBy     string  `json:"createdBy"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	Description   string  `json:"description,omitempty"`
	DefaultPoints float64 `json:"defaultPoints,omitempty"`
}

func ToRecognitionTypeResponse(t domain.RecognitionType) RecognitionTypeResponse {
	created := ""
	if !t.CreatedAt.IsZero() {
		created = t.CreatedAt.Format(time.RFC3339)
	}
	return RecognitionTypeResponse{
		ID:            t.ID,
		TypeName:      t.TypeName,
		CreatedBy:     t.CreatedBy,
		CreatedAt:     created,
		Description:   t.Description,
		DefaultPoints: t.DefaultPoints,
	}
}

// RecognitionTypeViewResponse is the recognition types table view.
type RecognitionTypeViewResponse struct {
	Items []RecognitionTypeResponse `json:"items"`
	PageMeta
	Message string `json:"message,omitempty"`
}

func ToRecognitionTypeViewResponse(res domain.ViewResult[domain.RecognitionType], message string) RecognitionTypeViewResponse {
	items := make([]RecognitionTypeResponse, len(res.Items))
	for i, t := range res.Items {
		items[i] = ToRecognitionTypeResponse(t)
	}
	return RecognitionTypeViewResponse{Items: items, PageMeta: pageMetaOf(res), Message: message}
}
