package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/profile"
)

func TestComputeUnderAllowance(t *testing.T) {
	// Allowance 50.00, spent 12.50 + 9.00.
	f := Compute(5000, 1250+900)

	assert.Equal(t, int64(2850), f.Remaining)
	assert.False(t, f.Danger)
	assert.Equal(t, "28.50", f.Display)
}

func TestComputeOverAllowance(t *testing.T) {
	// Allowance 50.00, spent 60.00: remaining stays negative, display is
	// the absolute value.
	f := Compute(5000, 6000)

	assert.Equal(t, int64(-1000), f.Remaining)
	assert.True(t, f.Danger)
	assert.Equal(t, "10.00", f.Display)
}

func TestComputeExactlyZeroIsDanger(t *testing.T) {
	f := Compute(5000, 5000)
	assert.Zero(t, f.Remaining)
	assert.True(t, f.Danger)
	assert.Equal(t, "0.00", f.Display)
}

func TestDailyAllowance(t *testing.T) {
	p := &profile.FinancialProfile{
		MonthlyIncome:      300000, // 3000.00
		FixedMonthlyCosts:  120000, // 1200.00
		MonthlyDebtPayment: 30000,  // 300.00
	}

	// June has 30 days: (3000 - 1200 - 300) / 30 = 50.00.
	june := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(5000), DailyAllowance(p, june))

	// February 2026 has 28 days.
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(150000/28), DailyAllowance(p, feb))
}

func TestDailyAllowanceFloorsAtZero(t *testing.T) {
	p := &profile.FinancialProfile{
		MonthlyIncome:     100000,
		FixedMonthlyCosts: 150000,
	}
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Zero(t, DailyAllowance(p, now))
}

func TestDayBounds(t *testing.T) {
	loc := time.UTC
	at := time.Date(2026, 8, 31, 17, 45, 3, 0, loc)

	from, to := DayBounds(at, loc)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, loc), to)
	assert.Equal(t, 24*time.Hour, to.Sub(from))
}
