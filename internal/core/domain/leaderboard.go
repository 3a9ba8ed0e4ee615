package domain

import "github.com/shopspring/decimal"

// LeaderboardEntry is one row of a top-senders or top-recipients panel.
// Points use decimal arithmetic so totals don't drift when the backend
// serves fractional or string-encoded values.
type LeaderboardEntry struct {
	Name   string          `json:"name"`
	Points decimal.Decimal `json:"points"`
}

func (l LeaderboardEntry) FieldValue(field string) (string, bool) {
	switch field {
	case "name":
		return present(l.Name)
	case "points":
		return l.Points.String(), true
	}
	return "", false
}

func (l LeaderboardEntry) SearchValues() []string {
	return []string{l.Name, l.Points.String()}
}
