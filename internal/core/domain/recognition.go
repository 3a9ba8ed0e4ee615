package domain

import "strconv"

// Recognition levels. The backend also serves records without a level.
const (
	LevelGold   = "gold"
	LevelSilver = "silver"
	LevelBronze = "bronze"
)

// Recognition is a peer award. Records are immutable once fetched; the
// upstream backend is the source of truth. Sender and recipient reference
// employees by full name (see Employee.FullName).
type Recognition struct {
	ID                  string  `json:"id"`
	RecognitionTypeName string  `json:"recognitionTypeName"`
	Category            string  `json:"category"`
	Level               string  `json:"level,omitempty"`
	AwardPoints         float64 `json:"awardPoints"`
	SenderName          string  `json:"senderName"`
	RecipientName       string  `json:"recipientName"`
	RecipientRole       Role    `json:"recipientRole,omitempty"`
	Message             string  `json:"message"`
	SentAt              int64   `json:"sentAt"` // unix seconds, 0 when absent
	CreatedAt           int64   `json:"createdAt,omitempty"`
	ApprovalStatus      string  `json:"approvalStatus,omitempty"`
	RejectionReason     string  `json:"rejectionReason,omitempty"`
}

// FieldValue projects a field by its wire name for filtering and sorting.
// Missing fields report ok=false so the caller can apply its own placeholder.
func (r Recognition) FieldValue(field string) (string, bool) {
	switch field {
	case "id":
		return present(r.ID)
	case "recognitionTypeName":
		return present(r.RecognitionTypeName)
	case "category":
		return present(r.Category)
	case "level":
		return present(r.Level)
	case "awardPoints":
		return formatNumber(r.AwardPoints), true
	case "senderName":
		return present(r.SenderName)
	case "recipientName":
		return present(r.RecipientName)
	case "recipientRole":
		return present(string(r.RecipientRole))
	case "message":
		return present(r.Message)
	case "sentAt":
		if r.SentAt == 0 {
			return "", false
		}
		return strconv.FormatInt(r.SentAt, 10), true
	case "approvalStatus":
		return present(r.ApprovalStatus)
	case "rejectionReason":
		return present(r.RejectionReason)
	}
	return "", false
}

// SearchValues is the fixed projection scanned by free-text search. It
// matches the column set of the recognitions table.
func (r Recognition) SearchValues() []string {
	return []string{
		r.ID,
		r.RecognitionTypeName,
		r.Category,
		r.Level,
		formatNumber(r.AwardPoints),
		r.SenderName,
		r.RecipientName,
		r.Message,
		r.ApprovalStatus,
		r.RejectionReason,
	}
}

// ScopeKeys returns the person names a scope must contain for this record
// to be visible. Sent-by and received-by both count as "mine".
func (r Recognition) ScopeKeys() []string {
	return []string{r.SenderName, r.RecipientName}
}

// Timestamp reports the raw sort timestamp for date fields. sentAt falls
// back to createdAt, then 0, so unformatted values always order correctly.
func (r Recognition) Timestamp(field string) (int64, bool) {
	if field != "sentAt" {
		return 0, false
	}
	if r.SentAt != 0 {
		return r.SentAt, true
	}
	return r.CreatedAt, true
}

func present(v string) (string, bool) {
	return v, v != ""
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
