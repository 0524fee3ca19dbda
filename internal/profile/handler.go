package profile

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/auth"
)

// Repo is the store contract the handler needs; *Repository satisfies it.
type Repo interface {
	GetByUser(ctx context.Context, userID string) (*FinancialProfile, error)
	Upsert(ctx context.Context, p *FinancialProfile) (*FinancialProfile, error)
}

type Handler struct {
	Repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) Get(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	p, err := h.Repo.GetByUser(userContext(c), userID)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "financial_profile_not_found"})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load profile: "+err.Error())
	}
	return c.JSON(p)
}

func (h *Handler) Upsert(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req UpsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if req.MonthlyIncome < 0 || req.FixedMonthlyCosts < 0 || req.MonthlyDebtPayment < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amounts must not be negative")
	}

	p, err := h.Repo.Upsert(userContext(c), &FinancialProfile{
		UserID:             userID,
		MonthlyIncome:      req.MonthlyIncome,
		FixedMonthlyCosts:  req.FixedMonthlyCosts,
		MonthlyDebtPayment: req.MonthlyDebtPayment,
		Currency:           req.Currency,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save profile: "+err.Error())
	}
	return c.JSON(p)
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
