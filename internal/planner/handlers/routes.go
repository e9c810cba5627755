package handlers

import (
	"interior-planner/internal/common/metrics"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

// Register вешает все маршруты сервиса на app.
func Register(app *fiber.App, planner *PlannerHandler, health *HealthHandler) {
	// ============================================================
	// Health, Docs & Metrics
	// ============================================================

	app.Get("/health/live", health.LivenessProbe)
	app.Get("/health/ready", health.ReadinessProbe)

	app.Get("/docs", SwaggerUI)
	app.Get("/docs/openapi.yaml", OpenAPISpec)

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// ============================================================
	// Catalog & Projects
	// ============================================================

	app.Get("/catalog", planner.ListCatalog)

	app.Post("/projects", planner.CreateProject)
	app.Get("/projects/:id", planner.GetProject)
	app.Post("/projects/:id/walls", planner.UploadWall)
	app.Post("/projects/:id/calibrations/:wall_id", planner.SetCalibration)
	app.Post("/projects/:id/scale", planner.SetScale)
	app.Post("/projects/:id/placements", planner.AddPlacement)

	// ============================================================
	// Rendering
	// ============================================================

	app.Post("/render", planner.Render)
	app.Get("/renders/:project_id/:wall_id", planner.GetRender)
}
