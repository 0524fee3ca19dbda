package transactions

import (
	"sort"
	"time"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/category"
)

// HistoryItem is one transaction decorated with its category display data.
type HistoryItem struct {
	Transaction
	CategoryName string `json:"category_name"`
	CategoryIcon string `json:"category_icon"`
}

// DayGroup holds one local calendar day's transactions in
// reverse-chronological order.
type DayGroup struct {
	Date  string        `json:"date"` // YYYY-MM-DD
	Items []HistoryItem `json:"items"`
	Total int64         `json:"total"`
}

// History is the grouped view of a user's transactions.
type History struct {
	Days  []DayGroup `json:"days"`
	Total int64      `json:"total"`
	Empty bool       `json:"empty"`
}

// BuildHistory orders transactions reverse-chronologically, groups them by
// local calendar date and totals them. The grouping is a partition: every
// input lands in exactly one day, and day totals sum to the overall total.
func BuildHistory(items []Transaction, loc *time.Location) History {
	if len(items) == 0 {
		return History{Empty: true}
	}
	if loc == nil {
		loc = time.Local
	}

	sorted := make([]Transaction, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	h := History{}
	for _, t := range sorted {
		day := t.Date.In(loc).Format("2006-01-02")
		cat := category.ByID(t.Category)
		item := HistoryItem{
			Transaction:  t,
			CategoryName: cat.Name,
			CategoryIcon: cat.Icon,
		}

		if n := len(h.Days); n > 0 && h.Days[n-1].Date == day {
			h.Days[n-1].Items = append(h.Days[n-1].Items, item)
			h.Days[n-1].Total += t.Amount
		} else {
			h.Days = append(h.Days, DayGroup{
				Date:  day,
				Items: []HistoryItem{item},
				Total: t.Amount,
			})
		}
		h.Total += t.Amount
	}
	return h
}
