package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/paymesh/paymesh/internal/config"
	"github.com/paymesh/paymesh/internal/ledger"
	"github.com/paymesh/paymesh/internal/middleware"
	"github.com/paymesh/paymesh/internal/rpc"
)

// Deps aggregates shared dependencies required to wire routes. Cache
// is optional; the ledger itself needs no external infrastructure.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares, constructs the ledger service and the
// operation registry, and mounts the dispatch endpoint. All services
// are built and injected here, at startup, by hand.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.RateLimit(d.Cache, d.Cfg.RatePerMinute))
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	store := ledger.NewAccountStore()
	ledgerSvc := ledger.NewService(store, d.Logger)

	registry := rpc.NewRegistry()
	ledger.RegisterOperations(registry, ledgerSvc)

	api := app.Group("/api")
	api.Post("/:operation", rpc.Dispatch(registry, d.Logger))

	return nil
}
