package transactions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(amount int64, cat string, at time.Time) Transaction {
	return Transaction{Amount: amount, Category: cat, Date: at}
}

func TestBuildHistoryEmptyInput(t *testing.T) {
	h := BuildHistory(nil, time.UTC)
	assert.True(t, h.Empty)
	assert.Nil(t, h.Days)
	assert.Zero(t, h.Total)
}

func TestBuildHistoryIsAPartition(t *testing.T) {
	day1 := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	items := []Transaction{
		tx(1250, "food", day1),
		tx(900, "transport", day2),
		tx(300, "food", day2.Add(2*time.Hour)),
		tx(5000, "bills", day1.Add(time.Hour)),
	}

	h := BuildHistory(items, time.UTC)
	require.False(t, h.Empty)

	count := 0
	var groupSum int64
	for _, g := range h.Days {
		count += len(g.Items)
		groupSum += g.Total

		var itemSum int64
		for _, it := range g.Items {
			itemSum += it.Amount
		}
		assert.Equal(t, g.Total, itemSum)
	}

	assert.Equal(t, len(items), count, "every transaction appears in exactly one group")
	assert.Equal(t, int64(7450), h.Total)
	assert.Equal(t, h.Total, groupSum, "group totals sum to the overall total")
}

func TestBuildHistoryReverseChronological(t *testing.T) {
	base := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	items := []Transaction{
		tx(100, "food", base),
		tx(200, "food", base.Add(3*time.Hour)),
		tx(300, "food", base.AddDate(0, 0, -1)),
		tx(400, "food", base.Add(time.Hour)),
	}

	h := BuildHistory(items, time.UTC)
	require.Len(t, h.Days, 2)

	assert.Equal(t, "2026-08-31", h.Days[0].Date)
	assert.Equal(t, "2026-08-30", h.Days[1].Date)

	// Within the newest day: 11:00, 09:00, 08:00.
	amounts := []int64{}
	for _, it := range h.Days[0].Items {
		amounts = append(amounts, it.Amount)
	}
	assert.Equal(t, []int64{200, 400, 100}, amounts)
}

func TestBuildHistoryStableForEqualTimestamps(t *testing.T) {
	at := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	a := tx(1, "food", at)
	b := tx(2, "food", at)

	h := BuildHistory([]Transaction{a, b}, time.UTC)
	require.Len(t, h.Days, 1)
	require.Len(t, h.Days[0].Items, 2)

	// Equal timestamps keep input order.
	assert.Equal(t, int64(1), h.Days[0].Items[0].Amount)
	assert.Equal(t, int64(2), h.Days[0].Items[1].Amount)
}

func TestBuildHistoryGroupsByLocalDate(t *testing.T) {
	// 2026-08-31 03:00 UTC is 2026-08-30 23:00 in New York.
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	at := time.Date(2026, 8, 31, 3, 0, 0, 0, time.UTC)
	h := BuildHistory([]Transaction{tx(100, "food", at)}, ny)
	require.Len(t, h.Days, 1)
	assert.Equal(t, "2026-08-30", h.Days[0].Date)
}

func TestBuildHistoryCategoryIconFallback(t *testing.T) {
	at := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	h := BuildHistory([]Transaction{tx(100, "not-a-category", at)}, time.UTC)

	require.Len(t, h.Days, 1)
	item := h.Days[0].Items[0]
	assert.Equal(t, "Other", item.CategoryName)
	assert.NotEmpty(t, item.CategoryIcon)
}
