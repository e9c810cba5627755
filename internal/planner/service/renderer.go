package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"interior-planner/internal/common/metrics"
	"interior-planner/internal/planner/models"
	"interior-planner/internal/planner/render"
)

var ErrMissingWallImage = errors.New("missing wall image")

// ============================================================
// Renderer
// ============================================================

// Renderer собирает превью стен: фото + слой с размещениями.
type Renderer struct {
	storage    *FileStorage
	compositor *render.Compositor
}

func NewRenderer(storage *FileStorage, compositor *render.Compositor) *Renderer {
	return &Renderer{
		storage:    storage,
		compositor: compositor,
	}
}

// RenderWalls рендерит перечисленные стены, а при пустом списке все стены
// с загруженным фото в порядке wall_id. Первая ошибка прерывает весь запрос;
// уже записанные к этому моменту рендеры остаются на диске.
func (r *Renderer) RenderWalls(ctx context.Context, project *models.Project, wallIDs []string) ([]models.RenderedWall, error) {
	if len(wallIDs) == 0 {
		wallIDs = WallIDs(project)
	}

	rendered := make([]models.RenderedWall, 0, len(wallIDs))
	for _, wallID := range wallIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		path, err := r.renderWall(project, wallID)
		if err != nil {
			metrics.ObserveRender(metrics.ResultError, time.Since(start))
			log.Printf("[RENDER] project %s wall %s: %v", project.ID, wallID, err)
			return nil, err
		}
		metrics.ObserveRender(metrics.ResultSuccess, time.Since(start))

		rendered = append(rendered, models.RenderedWall{WallID: wallID, ImagePath: path})
	}
	return rendered, nil
}

func (r *Renderer) renderWall(project *models.Project, wallID string) (string, error) {
	wall, ok := project.Walls[wallID]
	if !ok || wall.Filename == "" {
		return "", fmt.Errorf("%w %s", ErrMissingWallImage, wallID)
	}

	data, err := r.storage.Load(wall.Filename)
	if err != nil {
		return "", err
	}

	base, err := render.Decode(data)
	if err != nil {
		return "", fmt.Errorf("wall %s: %w", wallID, err)
	}

	bounds := base.Bounds()
	overlay := r.compositor.Overlay(bounds.Dx(), bounds.Dy(), project.PlacementsForWall(wallID))
	combined := render.Composite(base, overlay)

	out, err := render.EncodePNG(combined)
	if err != nil {
		return "", err
	}
	return r.storage.SaveRenderedWall(project.ID, wallID, out)
}

// WallIDs возвращает id стен с фото в отсортированном порядке.
func WallIDs(project *models.Project) []string {
	ids := make([]string, 0, len(project.Walls))
	for id := range project.Walls {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
