package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jediarchives/internal/service"
	"jediarchives/internal/storage"
)

// Deps are the collaborators the routes are served by. DB, Store and Archives are
// nil when archiving is disabled; Gatherer is nil when metrics are not exposed.
type Deps struct {
	DB       *sql.DB
	Store    storage.Storage
	Screens  service.ScreenService
	Archives service.ArchiveService
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB, d.Store))
	app.Get("/healthz", LivenessProbe())

	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	app.Get("/films", Films(d.Screens))
	app.Get("/films/:id", FilmDetail(d.Screens))
	app.Get("/characters/:id", CharacterDetail(d.Screens))

	if d.Archives == nil {
		return
	}
	archives := app.Group("/archives")
	archives.Post("/", CreateArchive(d.Archives))
	archives.Get("/", ListArchives(d.Archives))
	archives.Get("/:id", GetArchive(d.Archives))
	archives.Get("/:id/content", ArchiveContent(d.Archives))
	archives.Delete("/:id", DeleteArchive(d.Archives))
}
