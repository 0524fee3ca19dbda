package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/migueedlsantos97/FLUXapp-sub001/internal/admin"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/auth"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/budget"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/config"
	apphttp "github.com/migueedlsantos97/FLUXapp-sub001/internal/http"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/profile"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/reports"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/router"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/session"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/transactions"
	"github.com/migueedlsantos97/FLUXapp-sub001/internal/user"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	userRepo := user.NewRepository(pool)
	sessions := session.NewManager(session.NewPGStore(pool), cfg.Production())

	var provider auth.Provider
	if cfg.AuthEnforced {
		provider = &auth.SessionProvider{Sessions: sessions}
		log.Println("auth: enforced mode (platform environment present)")
	} else {
		provider = &auth.DemoProvider{}
		log.Println("auth: bypass mode, all requests run as the demo identity")

		// The demo user must exist so transaction and profile writes keep
		// their foreign keys.
		if _, err := userRepo.Upsert(ctx, provider.LoginIdentity()); err != nil {
			log.Fatalf("error seeding demo user: %v", err)
		}
	}
	authMW := auth.RequireUser(provider)

	txRepo := transactions.NewRepository(pool)
	profileRepo := profile.NewRepository(pool)

	r := &router.Router{
		AuthHandler: &apphttp.AuthHandler{
			Users:    userRepo,
			Sessions: sessions,
			Provider: provider,
		},
		TxHandler:        transactions.NewHandler(txRepo),
		ProfileHandler:   profile.NewHandler(profileRepo),
		BudgetHandler:    budget.NewHandler(profileRepo, txRepo),
		AdminHandler:     admin.NewHandler(pool),
		AuthMW:           authMW,
		AdminMW:          admin.RequireAdminKey(cfg.AdminKeyHash),
		WriteLimitMax:    cfg.RateLimitTxMax,
		WriteLimitWindow: cfg.RateLimitTxWindow,
	}
	if cfg.ReportSecret != "" {
		r.ReportsHandler = reports.NewHandler(pool, []byte(cfg.ReportSecret))
	} else {
		log.Println("REPORT_SECRET not set, statement export disabled")
	}
	r.RegisterRoutes(app)

	// SPA shell and the service worker.
	app.Static("/", cfg.WebDir)

	log.Println("Listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}
