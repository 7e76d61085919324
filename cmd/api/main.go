package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"llmcorp/internal/config"
	"llmcorp/internal/database"
	"llmcorp/internal/database/migration"
	handlers "llmcorp/internal/http/handler"
	"llmcorp/internal/logger"
	"llmcorp/internal/model"
	"llmcorp/internal/otel"
	"llmcorp/internal/repository/postgres"
	"llmcorp/internal/service"
)

// @title llmcorp API
// @version 1.0
// @description Chat and catalog backend.
// @BasePath /
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("invalid logger configuration")
	}
	log = log.With().Str("env", cfg.Env).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	svc := handlers.Services{Chat: service.NewChatService()}

	var db *sql.DB
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Str("db_host", cfg.Database.Host).Msg("failed to connect to database")
		}
		if cfg.Database.AutoMigrate {
			if err := migration.EnsureMigrated(ctx, db, log); err != nil {
				log.Fatal().Err(err).Msg("database migration failed")
			}
		}

		svc.Employees = service.NewRecordService[model.Employee](postgres.NewEmployeePostgres(db))
		svc.Models = service.NewRecordService[model.Model](postgres.NewModelPostgres(db))
		svc.Tasks = service.NewRecordService[model.Task](postgres.NewTaskPostgres(db))
	} else {
		log.Warn().Msg("DB_HOST not set, catalog routes disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := newApp(cfg, log, reg, db, svc)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		serveErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	}

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error().Err(err).Msg("tracer shutdown")
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("database close")
		}
	}

	log.Info().Msg("server exited")
}
