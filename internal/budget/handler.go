package budget

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/auth"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/profile"
)

type ProfileRepo interface {
	GetByUser(ctx context.Context, userID string) (*profile.FinancialProfile, error)
}

type SpendRepo interface {
	SumForRange(ctx context.Context, userID string, from, to time.Time) (int64, error)
}

type Handler struct {
	Profiles ProfileRepo
	Spend    SpendRepo

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewHandler(profiles ProfileRepo, spend SpendRepo) *Handler {
	return &Handler{Profiles: profiles, Spend: spend, Now: time.Now}
}

// Today computes the gauge figure for the current local calendar day. A
// missing profile never silently computes; the client routes to setup.
func (h *Handler) Today(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromLocals(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	ctx := userContext(c)

	p, err := h.Profiles.GetByUser(ctx, userID)
	if errors.Is(err, profile.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "financial_profile_not_found"})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load profile: "+err.Error())
	}

	now := h.Now()
	from, to := DayBounds(now, time.Local)
	spent, err := h.Spend.SumForRange(ctx, userID, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to sum spend: "+err.Error())
	}

	return c.JSON(Compute(DailyAllowance(p, now), spent))
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
