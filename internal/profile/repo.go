package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a user has not completed the setup flow yet.
var ErrNotFound = errors.New("financial profile not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) GetByUser(ctx context.Context, userID string) (*FinancialProfile, error) {
	var p FinancialProfile
	err := r.Pool.QueryRow(ctx,
		`SELECT user_id::text, monthly_income, fixed_monthly_costs, monthly_debt_payment, currency, updated_at
		 FROM financial_profiles
		 WHERE user_id = $1::uuid`,
		userID,
	).Scan(&p.UserID, &p.MonthlyIncome, &p.FixedMonthlyCosts, &p.MonthlyDebtPayment, &p.Currency, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Upsert(ctx context.Context, p *FinancialProfile) (*FinancialProfile, error) {
	var out FinancialProfile
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO financial_profiles (user_id, monthly_income, fixed_monthly_costs, monthly_debt_payment, currency, updated_at)
		 VALUES ($1::uuid, $2, $3, $4, COALESCE(NULLIF($5, ''), 'USD'), NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		   monthly_income = EXCLUDED.monthly_income,
		   fixed_monthly_costs = EXCLUDED.fixed_monthly_costs,
		   monthly_debt_payment = EXCLUDED.monthly_debt_payment,
		   currency = EXCLUDED.currency,
		   updated_at = NOW()
		 RETURNING user_id::text, monthly_income, fixed_monthly_costs, monthly_debt_payment, currency, updated_at`,
		p.UserID, p.MonthlyIncome, p.FixedMonthlyCosts, p.MonthlyDebtPayment, p.Currency,
	).Scan(&out.UserID, &out.MonthlyIncome, &out.FixedMonthlyCosts, &out.MonthlyDebtPayment, &out.Currency, &out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
