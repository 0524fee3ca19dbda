package transactions

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/auth"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/category"
)

// Repo is the store contract the handler needs; *Repository satisfies it.
type Repo interface {
	Create(ctx context.Context, tx *Transaction) (string, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Transaction, error)
}

type Handler struct {
	Repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if req.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be greater than zero")
	}

	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		req.Category = category.Generic.ID
	}

	date := time.Now()
	if strings.TrimSpace(req.Date) != "" {
		// Local zone, so a transaction dated "today" lands inside the local
		// calendar day the gauge and history group by.
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		date = parsed
	}

	tx := &Transaction{
		UserID:      userID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}

	id, err := h.Repo.Create(userContext(c), tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to add transaction: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(CreateTransactionResponse{
		ID:      id,
		Message: "transaction added",
	})
}

func (h *Handler) List(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Repo.ListByUser(userContext(c), userID, c.QueryInt("limit"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions: "+err.Error())
	}
	return c.JSON(fiber.Map{"items": items})
}

func (h *Handler) History(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Repo.ListByUser(userContext(c), userID, c.QueryInt("limit"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions: "+err.Error())
	}

	return c.JSON(BuildHistory(items, time.Local))
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
