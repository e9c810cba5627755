package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"interior-planner/internal/common/config"
	"interior-planner/internal/common/metrics"
	"interior-planner/internal/common/middleware"
	"interior-planner/internal/planner/catalog"
	"interior-planner/internal/planner/handlers"
	"interior-planner/internal/planner/render"
	"interior-planner/internal/planner/repository"
	"interior-planner/internal/planner/service"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Interior Planner Service
// ============================================================

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	style, err := render.ParseStyle(cfg.OverlayFill, cfg.OverlayFillAlpha, cfg.OverlayOutline, cfg.OverlayOutlineAlpha, cfg.OverlayText)
	if err != nil {
		log.Fatalf("overlay style: %v", err)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer closeStore()

	fileStorage := service.NewFileStorage(cfg.UploadsDir())
	if err := fileStorage.EnsureRoot(); err != nil {
		log.Fatalf("prepare storage: %v", err)
	}

	metrics.Init()

	renderer := service.NewRenderer(fileStorage, render.NewCompositor(cat, style))
	plannerHandler := handlers.NewPlannerHandler(store, fileStorage, renderer, cat)
	healthHandler := handlers.NewHealthHandler(fileStorage.Root())

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		BodyLimit:    cfg.BodyLimit(),
		ErrorHandler: middleware.ErrorHandler,
		AppName:      "Interior Planner",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	handlers.Register(app, plannerHandler, healthHandler)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Interior Planner on %s (env: %s, store: %s, data: %s)", addr, cfg.Environment, cfg.StoreDriver, cfg.DataDir)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func openStore(cfg *config.Config) (repository.ProjectStore, func(), error) {
	if cfg.StoreDriver != config.StoreSQLite {
		return repository.NewMemoryStore(), func() {}, nil
	}

	db, err := repository.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}

	store := repository.NewSQLiteStore(db)
	if err := store.Init(context.Background()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("init db: %w", err)
	}

	log.Printf("[STORE] sqlite at %s", cfg.SQLitePath)
	return store, func() { db.Close() }, nil
}
