package transactions

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Create(ctx context.Context, tx *Transaction) (string, error) {
	var id string
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO transactions (user_id, amount, category, description, date)
		 VALUES ($1::uuid, $2, $3, $4, $5)
		 RETURNING id::text`,
		tx.UserID, tx.Amount, tx.Category, tx.Description, tx.Date,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string, limit int) ([]Transaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}

	rows, err := r.Pool.Query(ctx,
		`SELECT id::text, user_id::text, amount, category, description, date, created_at
		 FROM transactions
		 WHERE user_id = $1::uuid
		 ORDER BY date DESC, created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Transaction, 0, limit)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Category, &t.Description, &t.Date, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// SumForRange totals a user's spend for date values in [from, to).
func (r *Repository) SumForRange(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var total int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)::bigint
		 FROM transactions
		 WHERE user_id = $1::uuid AND date >= $2 AND date < $3`,
		userID, from, to,
	).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
