package handler

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docdash/internal/http/middleware"
	"docdash/internal/prefs"
	"docdash/internal/service"
)

// Deps bundles everything the HTTP layer needs.
type Deps struct {
	DB        *sql.DB
	Documents service.DocumentService
	Dashboard service.DashboardService
	Summaries service.SummaryService
	Prefs     *prefs.Store
	APIToken  string
	Metrics   prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, deps Deps) {
	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())

	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	// An empty token makes Auth a pass-through; that must never happen
	// silently.
	if deps.APIToken == "" {
		warnAuthDisabled()
	}
	api := app.Group("/api", middleware.Auth(deps.APIToken))

	api.Get("/documents", ListDocuments(deps.Documents))
	api.Post("/documents", UploadDocument(deps.Documents))
	api.Get("/documents/:id", GetDocument(deps.Documents))
	api.Get("/documents/:id/download", DownloadDocument(deps.Documents))
	api.Delete("/documents/:id", DeleteDocument(deps.Documents))

	api.Get("/analytics/stats", GetDashboardStats(deps.Dashboard))
	api.Get("/analytics/charts/uploads.svg", UploadsChart(deps.Dashboard))
	api.Get("/analytics/charts/types.svg", TypesChart(deps.Dashboard))
	api.Get("/analytics/charts/activity.svg", ActivityChart(deps.Dashboard))

	api.Post("/summarize", Summarize(deps.Summaries))

	api.Get("/preferences", GetPreferences(deps.Prefs))
	api.Post("/preferences/selection/toggle", ToggleSelection(deps.Prefs))
	api.Put("/preferences/selection", SetSelection(deps.Prefs))
	api.Delete("/preferences/selection", ClearSelection(deps.Prefs))
	api.Post("/preferences/dark-mode/toggle", ToggleDarkMode(deps.Prefs))
}

func warnAuthDisabled() {
	b, err := json.Marshal(map[string]any{
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"level": "warn",
		"msg":   "api_auth_disabled",
		"hint":  "API_TOKEN is empty; /api routes accept unauthenticated requests",
	})
	if err != nil {
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
