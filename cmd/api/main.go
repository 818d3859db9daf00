package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"docdash/docs"
	"docdash/internal/client/llm"
	"docdash/internal/client/reporting"
	"docdash/internal/config"
	"docdash/internal/database"
	"docdash/internal/database/migration"
	handlers "docdash/internal/http/handler"
	"docdash/internal/http/middleware"
	"docdash/internal/otel"
	"docdash/internal/prefs"
	"docdash/internal/repository/postgres"
	"docdash/internal/service"
	"docdash/internal/storage"
)

// @title Document Dashboard API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc := time.UTC
	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	reportingClient, err := reporting.New(cfg.Reporting)
	if err != nil {
		log.Fatalf("failed to initialize reporting client: %v", err)
	}
	llmClient, err := llm.New(cfg.LLM)
	if err != nil {
		log.Fatalf("failed to initialize llm client: %v", err)
	}

	prefsStore, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		log.Fatalf("failed to open preferences store: %v", err)
	}

	// Initialize repositories and services
	docRepo := postgres.NewDocumentPostgres(db)
	docSvc := service.NewDocumentService(objStore, docRepo)
	dashSvc := service.NewDashboardService(reportingClient, docRepo, service.DashboardOptions{
		CacheTTL:      time.Duration(cfg.Analytics.CacheTTLSec) * time.Second,
		FallbackLimit: cfg.Analytics.FallbackLimit,
	})
	sumSvc := service.NewSummaryService(docRepo, objStore, llmClient, cfg.LLM.MaxContentBytes)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	registry := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, handlers.Deps{
		DB:        db,
		Documents: docSvc,
		Dashboard: dashSvc,
		Summaries: sumSvc,
		Prefs:     prefsStore,
		APIToken:  cfg.APIToken,
		Metrics:   registry,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
