package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/admin"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/budget"
	handlers "github.com/migueedlsantos97/FLUXapp-sub001/internal/http"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/profile"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/reports"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/transactions"
)

type Router struct {
	AuthHandler    *handlers.AuthHandler
	TxHandler      *transactions.Handler
	ProfileHandler *profile.Handler
	BudgetHandler  *budget.Handler
	ReportsHandler *reports.Handler
	AdminHandler   *admin.Handler

	AuthMW  fiber.Handler
	AdminMW fiber.Handler

	WriteLimitMax    int
	WriteLimitWindow time.Duration
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.AuthHandler != nil {
		authLimit := RateLimitAuth()
		app.Get("/api/login", authLimit, r.AuthHandler.Login)
		app.Get("/api/callback", authLimit, r.AuthHandler.Callback)
		app.Get("/api/logout", r.AuthHandler.Logout)
		app.Get("/api/auth/user", r.AuthMW, r.AuthHandler.CurrentUser)
	}

	if r.TxHandler != nil {
		// The limiter sits behind the gate so its key generator sees the
		// resolved user id; ahead of it every request would key by IP.
		writeLimit := RateLimitWrite(r.WriteLimitMax, r.WriteLimitWindow)
		app.Post("/api/transactions", r.AuthMW, writeLimit, r.TxHandler.Create)
		app.Get("/api/transactions", r.AuthMW, r.TxHandler.List)
		app.Get("/api/transactions/history", r.AuthMW, r.TxHandler.History)
	}

	if r.ProfileHandler != nil {
		app.Get("/api/financial-profile", r.AuthMW, r.ProfileHandler.Get)
		app.Put("/api/financial-profile", r.AuthMW, r.ProfileHandler.Upsert)
	}

	if r.BudgetHandler != nil {
		app.Get("/api/budget/today", r.AuthMW, r.BudgetHandler.Today)
	}

	if r.ReportsHandler != nil {
		app.Get("/api/reports/statement", r.AuthMW, r.ReportsHandler.CreateStatementLink)
		app.Get("/r/:token", r.ReportsHandler.Download)
	}

	if r.AdminHandler != nil && r.AdminMW != nil {
		app.Get("/api/admin/overview", r.AdminMW, r.AdminHandler.Overview)
	}
}
