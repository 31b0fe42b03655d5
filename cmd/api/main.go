package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"jediarchives/docs"
	"jediarchives/internal/config"
	"jediarchives/internal/database"
	"jediarchives/internal/database/migration"
	handlers "jediarchives/internal/http/handler"
	"jediarchives/internal/http/middleware"
	"jediarchives/internal/logging"
	"jediarchives/internal/otel"
	"jediarchives/internal/repository/postgres"
	"jediarchives/internal/service"
	"jediarchives/internal/storage"
	"jediarchives/internal/swapi"
)

// @title JediArchives API
// @version 1.0
// @description Screen view models for browsing Star Wars films and characters.
// @BasePath /
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.Location())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server_exited", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// Refuse to start with operation documents that do not match the schema.
	if err := swapi.ValidateOperations(); err != nil {
		return fmt.Errorf("validate swapi operations: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	swapiMetrics, err := swapi.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register swapi metrics: %w", err)
	}
	client, err := swapi.NewClient(cfg.Swapi, swapi.WithLogger(logger), swapi.WithMetrics(swapiMetrics))
	if err != nil {
		return fmt.Errorf("create swapi client: %w", err)
	}
	screens := service.NewScreenService(client, logger)

	deps := handlers.Deps{Screens: screens, Gatherer: reg}

	if cfg.Archive.Enabled {
		db, store, err := openArchiveBackends(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := postgres.NewArchivePostgres(db)
		deps.DB = db
		deps.Store = store
		deps.Archives = service.NewArchiveService(screens, store, repo, cfg.Archive.URLExpiry())
	}

	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(httpMetrics.Handler())

	handlers.RegisterRoutes(app, deps)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = cfg.AppHost
		if host := c.Get("Host"); host != "" {
			docs.SwaggerInfo.Host = host
		}
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := cfg.ListenAddr()
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_starting",
			zap.String("addr", addr),
			zap.String("swapi_endpoint", cfg.Swapi.Endpoint),
			zap.Bool("archive_enabled", cfg.Archive.Enabled),
		)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server_stopping")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(sctx)
}

// openArchiveBackends connects PostgreSQL and MinIO and ensures the schema exists.
func openArchiveBackends(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (*sql.DB, storage.Storage, error) {
	db, err := database.NewPostgres(ctx, cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	mctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := migration.EnsureMigrated(mctx, db, logger, cfg.Database.Host); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate database: %w", err)
	}

	store, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("initialize object storage: %w", err)
	}
	return db, store, nil
}
