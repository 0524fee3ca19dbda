package profile

import "time"

// FinancialProfile holds the per-user inputs of the budget computation.
// All money fields are cents per month.
type FinancialProfile struct {
	UserID             string    `db:"user_id" json:"user_id"`
	MonthlyIncome      int64     `db:"monthly_income" json:"monthly_income"`
	FixedMonthlyCosts  int64     `db:"fixed_monthly_costs" json:"fixed_monthly_costs"`
	MonthlyDebtPayment int64     `db:"monthly_debt_payment" json:"monthly_debt_payment"`
	Currency           string    `db:"currency" json:"currency"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

type UpsertProfileRequest struct {
	MonthlyIncome      int64  `json:"monthly_income"`
	FixedMonthlyCosts  int64  `json:"fixed_monthly_costs"`
	MonthlyDebtPayment int64  `json:"monthly_debt_payment"`
	Currency           string `json:"currency"`
}
