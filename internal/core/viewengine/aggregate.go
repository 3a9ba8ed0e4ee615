package viewengine

import (
	"sort"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/myteamhq/myteam_console/internal/core/domain"
)

// maxMonthBuckets bounds the month chart to the most recent year of data.
const maxMonthBuckets = 12

// unknownRole buckets recognitions whose recipient role is absent.
const unknownRole = "unknown"

// MonthBucket is one chart-ready month of recognition activity.
type MonthBucket struct {
	Month        string          `json:"month"` // YYYY-MM, local calendar
	Recognitions int             `json:"recognitions"`
	Points       decimal.Decimal `json:"points"`
	Roles        map[string]int  `json:"roles"`
}

// RoleBucket is one slice of the recognitions-by-role pie.
type RoleBucket struct {
	Name  string `json:"name"` // display label, TitleCase
	Value int    `json:"value"`
	Role  string `json:"role"`
}

// AggregateByMonth buckets recognitions by local calendar month of sentAt.
// Records without a timestamp are excluded, not zero-bucketed. Buckets come
// back in ascending month order, truncated to the latest 12; older months
// are dropped outright.
func AggregateByMonth(records []domain.Recognition) []MonthBucket {
	byMonth := make(map[string]*MonthBucket)
	for _, rec := range records {
		if rec.SentAt == 0 {
			continue
		}
		month := time.Unix(rec.SentAt, 0).Format("2006-01")
		bucket, ok := byMonth[month]
		if !ok {
			bucket = &MonthBucket{Month: month, Roles: make(map[string]int)}
			byMonth[month] = bucket
		}
		bucket.Recognitions++
		bucket.Points = bucket.Points.Add(decimal.NewFromFloat(rec.AwardPoints))
		bucket.Roles[roleKey(rec.RecipientRole)]++
	}

	out := make([]MonthBucket, 0, len(byMonth))
	for _, bucket := range byMonth {
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	if len(out) > maxMonthBuckets {
		out = out[len(out)-maxMonthBuckets:]
	}
	return out
}

// AggregateByRole counts recognitions per recipient role. Buckets are
// ordered by descending count, then role name, so chart payloads are
// deterministic.
func AggregateByRole(records []domain.Recognition) []RoleBucket {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[roleKey(rec.RecipientRole)]++
	}
	out := make([]RoleBucket, 0, len(counts))
	for role, count := range counts {
		out = append(out, RoleBucket{Name: titleCase(role), Value: count, Role: role})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Role < out[j].Role
	})
	return out
}

// FilterByMonth keeps recognitions sent in the given YYYY-MM month. Used
// for chart drill-down; a blank month keeps everything.
func FilterByMonth(records []domain.Recognition, month string) []domain.Recognition {
	if month == "" {
		return records
	}
	out := make([]domain.Recognition, 0, len(records))
	for _, rec := range records {
		if rec.SentAt == 0 {
			continue
		}
		if time.Unix(rec.SentAt, 0).Format("2006-01") == month {
			out = append(out, rec)
		}
	}
	return out
}

// FilterByRole keeps recognitions whose recipient role matches. The
// "unknown" bucket matches records without a role.
func FilterByRole(records []domain.Recognition, role string) []domain.Recognition {
	if role == "" {
		return records
	}
	out := make([]domain.Recognition, 0, len(records))
	for _, rec := range records {
		if roleKey(rec.RecipientRole) == role {
			out = append(out, rec)
		}
	}
	return out
}

func roleKey(role domain.Role) string {
	if role == "" {
		return unknownRole
	}
	return string(role)
}

func titleCase(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
