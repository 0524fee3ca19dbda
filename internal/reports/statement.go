package reports

import (
	"bytes"
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phpdave11/gofpdf"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/category"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/money"
)

type statementRow struct {
	Date        string
	Category    string
	Description string
	Amount      int64
}

func loadStatement(ctx context.Context, pool *pgxpool.Pool, userID, from, to string) ([]statementRow, int64, error) {
	rows, err := pool.Query(ctx, `
SELECT date::date::text, category, COALESCE(description, ''), amount
FROM transactions
WHERE user_id = $1::uuid AND date::date BETWEEN $2::date AND $3::date
ORDER BY date DESC, created_at DESC
LIMIT 2000
`, userID, from, to)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []statementRow
	var total int64
	for rows.Next() {
		var r statementRow
		if err := rows.Scan(&r.Date, &r.Category, &r.Description, &r.Amount); err != nil {
			return nil, 0, err
		}
		items = append(items, r)
		total += r.Amount
	}
	return items, total, rows.Err()
}

func buildStatementPDF(items []statementRow, total int64, from, to string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(20, 20, 20)
	pdf.Cell(0, 10, "Flux Spending Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Period: "+from+" to "+to)
	pdf.Ln(5)
	pdf.Cell(0, 6, "Total spent: "+money.CentsToDollarsString(total))
	pdf.Ln(10)

	colW := []float64{28, 44, 80, 30}
	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.SetTextColor(20, 20, 20)
		pdf.CellFormat(colW[0], 8, "DATE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[1], 8, "CATEGORY", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[2], 8, "DESCRIPTION", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[3], 8, "AMOUNT", "1", 1, "R", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(30, 30, 30)
	}
	writeHeader()

	for _, it := range items {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeHeader()
		}
		pdf.CellFormat(colW[0], 8, it.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, category.ByID(it.Category).Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[2], 8, trimTo(it.Description, 60), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[3], 8, money.CentsToDollarsString(it.Amount), "1", 1, "R", false, 0, "")
	}

	if len(items) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 8, "No transactions in this period", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func trimTo(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
