package viewengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myteamhq/myteam_console/internal/core/domain"
	"github.com/myteamhq/myteam_console/internal/core/viewengine"
)

func ids(recs []domain.Recognition) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func TestSort(t *testing.T) {
	t.Run("numeric fields compare numerically", func(t *testing.T) {
		recs := []domain.Recognition{
			{ID: "a", AwardPoints: 10},
			{ID: "b", AwardPoints: 2},
			{ID: "c", AwardPoints: 100},
		}
		got := viewengine.Sort(recs, "awardPoints", domain.SortAsc)
		assert.Equal(t, []string{"b", "a", "c"}, ids(got))
	})

	t.Run("string fields compare lowercased", func(t *testing.T) {
		recs := []domain.Recognition{
			{ID: "a", SenderName: "zoe"},
			{ID: "b", SenderName: "Alice"},
			{ID: "c", SenderName: "bob"},
		}
		got := viewengine.Sort(recs, "senderName", domain.SortAsc)
		assert.Equal(t, []string{"b", "c", "a"}, ids(got))
	})

	t.Run("desc reverses asc for distinct keys", func(t *testing.T) {
		recs := []domain.Recognition{
			{ID: "a", AwardPoints: 1},
			{ID: "b", AwardPoints: 3},
			{ID: "c", AwardPoints: 2},
		}
		got := viewengine.Sort(recs, "awardPoints", domain.SortDesc)
		assert.Equal(t, []string{"b", "c", "a"}, ids(got))
	})

	t.Run("equal keys keep incoming order", func(t *testing.T) {
		recs := []domain.Recognition{
			{ID: "first", Category: "teamwork"},
			{ID: "second", Category: "teamwork"},
			{ID: "third", Category: "teamwork"},
		}
		got := viewengine.Sort(recs, "category", domain.SortDesc)
		assert.Equal(t, []string{"first", "second", "third"}, ids(got))
	})

	t.Run("missing values sort as empty strings first", func(t *testing.T) {
		recs := []domain.Recognition{
			{ID: "a", Level: "gold"},
			{ID: "b"},
			{ID: "c", Level: "bronze"},
		}
		got := viewengine.Sort(recs, "level", domain.SortAsc)
		assert.Equal(t, []string{"b", "c", "a"}, ids(got))
	})

	t.Run("date fields sort on raw timestamps", func(t *testing.T) {
		recs := []domain.Recognition{
			{ID: "a", SentAt: 3000},
			{ID: "b", CreatedAt: 1000}, // no sentAt, falls back to createdAt
			{ID: "c", SentAt: 2000},
		}
		got := viewengine.Sort(recs, "sentAt", domain.SortAsc)
		assert.Equal(t, []string{"b", "c", "a"}, ids(got))
	})

	t.Run("blank field keeps order", func(t *testing.T) {
		recs := recFixture()
		got := viewengine.Sort(recs, "", domain.SortDesc)
		assert.Equal(t, ids(recs), ids(got))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		recs := []domain.Recognition{
			{ID: "a", AwardPoints: 2},
			{ID: "b", AwardPoints: 1},
		}
		_ = viewengine.Sort(recs, "awardPoints", domain.SortAsc)
		require.Equal(t, "a", recs[0].ID)
	})
}
