package budget

import (
	"time"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/money"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/profile"
)

// Figure is the gauge value: the amount safely spendable for the rest of the
// day. Remaining is never clamped; Display carries the absolute value the
// gauge renders, and Danger flips the visual state.
type Figure struct {
	Allowance int64  `json:"daily_allowance"`
	Spent     int64  `json:"spent_today"`
	Remaining int64  `json:"remaining"`
	Danger    bool   `json:"danger"`
	Display   string `json:"display"`
}

// DailyAllowance derives the day's spendable cents from the profile:
// monthly income minus fixed costs minus debt payment, spread over the days
// of day's month, floored at zero.
func DailyAllowance(p *profile.FinancialProfile, day time.Time) int64 {
	free := p.MonthlyIncome - p.FixedMonthlyCosts - p.MonthlyDebtPayment
	if free <= 0 {
		return 0
	}
	return free / int64(daysInMonth(day))
}

// Compute produces the gauge figure for a given allowance and same-day spend.
func Compute(allowance, spent int64) Figure {
	remaining := allowance - spent
	display := remaining
	if display < 0 {
		display = -display
	}
	return Figure{
		Allowance: allowance,
		Spent:     spent,
		Remaining: remaining,
		Danger:    remaining <= 0,
		Display:   money.CentsToDollarsString(display),
	}
}

// DayBounds returns [start, end) of day's local calendar date.
func DayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	d := day.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

func daysInMonth(day time.Time) int {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	return first.AddDate(0, 1, -1).Day()
}
