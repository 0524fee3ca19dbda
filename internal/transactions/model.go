package transactions

import "time"

// Transaction is one recorded expense. Amounts are positive cents;
// transactions are immutable once created.
type Transaction struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Amount      int64     `db:"amount" json:"amount"`
	Category    string    `db:"category" json:"category"`
	Description *string   `db:"description" json:"description,omitempty"`
	Date        time.Time `db:"date" json:"date"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateTransactionRequest struct {
	Amount      int64   `json:"amount"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
	Date        string  `json:"date"` // YYYY-MM-DD, defaults to today
}

type CreateTransactionResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
