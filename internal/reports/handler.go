package reports

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/auth"
)

type Handler struct {
	Pool   *pgxpool.Pool
	Secret []byte
}

func NewHandler(pool *pgxpool.Pool, secret []byte) *Handler {
	return &Handler{Pool: pool, Secret: secret}
}

// CreateStatementLink issues a short-lived tokenized download URL for the
// caller's statement. Defaults to the last 30 days.
func (h *Handler) CreateStatementLink(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		end := time.Now()
		start := end.AddDate(0, 0, -29)
		from = start.Format("2006-01-02")
		to = end.Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", from); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "to must be YYYY-MM-DD")
	}

	token, exp, err := signLink(h.Secret, userID, from, to, time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to sign link: "+err.Error())
	}

	return c.JSON(fiber.Map{
		"url":        "/r/" + token,
		"expires_at": exp.UTC().Format(time.RFC3339),
	})
}

// Download verifies the link token, rebuilds the PDF and streams it.
// Invalid or expired tokens are indistinguishable from unknown ones.
func (h *Handler) Download(c *fiber.Ctx) error {
	claims, err := parseLink(h.Secret, c.Params("token"))
	if err != nil {
		return fiber.ErrNotFound
	}

	ctx := c.UserContext()
	items, total, err := loadStatement(ctx, h.Pool, claims.UserID, claims.From, claims.To)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed statement: "+err.Error())
	}

	pdfBytes, err := buildStatementPDF(items, total, claims.From, claims.To)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render pdf: "+err.Error())
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", "inline; filename=flux-statement.pdf")
	return c.Send(pdfBytes)
}
