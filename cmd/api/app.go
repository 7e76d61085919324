package main

import (
	"database/sql"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"llmcorp/internal/config"
	handlers "llmcorp/internal/http/handler"
	"llmcorp/internal/http/middleware"
)

// newApp assembles the middleware chain, the metrics endpoint backed by reg,
// and the API routes. db may be nil.
func newApp(cfg *config.AppConfig, log zerolog.Logger, reg *prometheus.Registry, db *sql.DB, svc handlers.Services) (*fiber.App, error) {
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "llmcorp-api",
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(metrics.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	handlers.RegisterRoutes(app, db, svc)

	return app, nil
}
