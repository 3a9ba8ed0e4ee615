package domain

import (
	"time"
)

// RecognitionType is a configurable award category managed by managers and
// admins.
type RecognitionType struct {
	ID            string    `json:"id"`
	TypeName      string    `json:"typeName"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	Description   string    `json:"description,omitempty"`
	DefaultPoints float64   `json:"defaultPoints,omitempty"`
}

func (t RecognitionType) FieldValue(field string) (string, bool) {
	switch field {
	case "id":
		return present(t.ID)
	case "typeName":
		return present(t.TypeName)
	case "createdBy":
		return present(t.CreatedBy)
	case "createdAt":
		if t.CreatedAt.IsZero() {
			return "", false
		}
		return t.CreatedAt.Format(time.RFC3339), true
	case "description":
		return present(t.Description)
	case "defaultPoints":
		return formatNumber(t.DefaultPoints), true
	}
	return "", false
}

func (t RecognitionType) SearchValues() []string {
	return []string{t.ID, t.TypeName, t.CreatedBy, t.Description, formatNumber(t.DefaultPoints)}
}

// Timestamp lets createdAt sort on the raw instant instead of its formatted
// string.
func (t RecognitionType) Timestamp(field string) (int64, bool) {
	if field != "createdAt" {
		return 0, false
	}
	if t.CreatedAt.IsZero() {
		return 0, true
	}
	return t.CreatedAt.Unix(), true
}
