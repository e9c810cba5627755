package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"interior-planner/internal/common/metrics"
	"interior-planner/internal/planner/catalog"
	"interior-planner/internal/planner/models"
	"interior-planner/internal/planner/render"
	"interior-planner/internal/planner/repository"
	"interior-planner/internal/planner/service"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Planner Handler
// ============================================================

type PlannerHandler struct {
	store    repository.ProjectStore
	storage  *service.FileStorage
	renderer *service.Renderer
	catalog  *catalog.Catalog
}

func NewPlannerHandler(store repository.ProjectStore, storage *service.FileStorage, renderer *service.Renderer, cat *catalog.Catalog) *PlannerHandler {
	return &PlannerHandler{
		store:    store,
		storage:  storage,
		renderer: renderer,
		catalog:  cat,
	}
}

type createProjectRequest struct {
	Name string `json:"name"`
}

type uploadWallResponse struct {
	WallID         string `json:"wall_id"`
	StoredFilename string `json:"stored_filename"`
}

type renderRequest struct {
	ProjectID string   `json:"project_id"`
	Walls     []string `json:"walls"`
}

type renderResponse struct {
	ProjectID string                `json:"project_id"`
	Rendered  []models.RenderedWall `json:"rendered"`
}

// ListCatalog возвращает каталог мебели с вариантами.
func (h *PlannerHandler) ListCatalog(c fiber.Ctx) error {
	return c.JSON(h.catalog.List())
}

// CreateProject создаёт пустой проект с новым id.
func (h *PlannerHandler) CreateProject(c fiber.Ctx) error {
	var req createProjectRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	project, err := h.store.Create(c.Context(), req.Name)
	if err != nil {
		return err
	}

	log.Printf("[PLANNER] project %s created", project.ID)
	return c.JSON(project)
}

// GetProject отдаёт документ проекта целиком.
func (h *PlannerHandler) GetProject(c fiber.Ctx) error {
	project, err := h.loadProject(c, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(project)
}

// UploadWall сохраняет фото стены (multipart поле "file") и привязывает его к wall_id.
func (h *PlannerHandler) UploadWall(c fiber.Ctx) error {
	project, err := h.loadProject(c, c.Params("id"))
	if err != nil {
		return err
	}

	wallID := c.Query("wall_id")
	if wallID == "" {
		return fiber.NewError(http.StatusBadRequest, "wall_id required")
	}
	if !service.ValidName(wallID) {
		return fiber.NewError(http.StatusBadRequest, "invalid wall_id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "file required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "failed to open file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "failed to read file")
	}

	stored, err := h.storage.SaveWallImage(project.ID, wallID, data, fileHeader.Filename)
	if err != nil {
		log.Printf("[PLANNER] save wall image error: %v", err)
		return fiber.NewError(http.StatusInternalServerError, "failed to save file")
	}

	project.SetWallImage(wallID, stored)
	if err := h.store.Save(c.Context(), project); err != nil {
		return toHTTPError(err)
	}
	metrics.IncUpload()

	return c.JSON(uploadWallResponse{
		WallID:         wallID,
		StoredFilename: stored,
	})
}

// SetCalibration сохраняет опорные точки стены. На рендер не влияет.
func (h *PlannerHandler) SetCalibration(c fiber.Ctx) error {
	project, err := h.loadProject(c, c.Params("id"))
	if err != nil {
		return err
	}

	var cal models.WallCalibration
	if err := decodeBody(c, &cal); err != nil {
		return err
	}

	project.SetCalibration(c.Params("wall_id"), cal)
	if err := h.store.Save(c.Context(), project); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// SetScale задаёт масштаб комнаты по эталонной стене.
func (h *PlannerHandler) SetScale(c fiber.Ctx) error {
	project, err := h.loadProject(c, c.Params("id"))
	if err != nil {
		return err
	}

	var scale models.RoomScale
	if err := decodeBody(c, &scale); err != nil {
		return err
	}
	if scale.ReferenceWall == "" {
		return fiber.NewError(http.StatusBadRequest, "reference_wall required")
	}

	project.SetScale(scale)
	if err := h.store.Save(c.Context(), project); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// AddPlacement добавляет размещение. SKU и стена не сверяются с каталогом и фото.
func (h *PlannerHandler) AddPlacement(c fiber.Ctx) error {
	project, err := h.loadProject(c, c.Params("id"))
	if err != nil {
		return err
	}

	var placement models.FurniturePlacement
	if err := decodeBody(c, &placement); err != nil {
		return err
	}
	if placement.SKU == "" || placement.WallID == "" {
		return fiber.NewError(http.StatusBadRequest, "sku and wall_id required")
	}

	count := project.AddPlacement(placement)
	if err := h.store.Save(c.Context(), project); err != nil {
		return toHTTPError(err)
	}
	metrics.IncPlacement()

	return c.JSON(fiber.Map{"status": "ok", "count": count})
}

// Render собирает превью для перечисленных стен (или всех стен с фото).
func (h *PlannerHandler) Render(c fiber.Ctx) error {
	var req renderRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if req.ProjectID == "" {
		return fiber.NewError(http.StatusBadRequest, "project_id required")
	}
	for _, wallID := range req.Walls {
		if !service.ValidName(wallID) {
			return fiber.NewError(http.StatusBadRequest, "invalid wall_id")
		}
	}

	project, err := h.loadProject(c, req.ProjectID)
	if err != nil {
		return err
	}

	rendered, err := h.renderer.RenderWalls(c.Context(), project, req.Walls)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(renderResponse{
		ProjectID: project.ID,
		Rendered:  rendered,
	})
}

// GetRender отдаёт PNG последнего рендера стены.
func (h *PlannerHandler) GetRender(c fiber.Ctx) error {
	projectID := c.Params("project_id")
	wallID := c.Params("wall_id")
	if !service.ValidName(projectID) || !service.ValidName(wallID) {
		return fiber.NewError(http.StatusBadRequest, "invalid path")
	}

	if !h.storage.RenderExists(projectID, wallID) {
		return fiber.NewError(http.StatusNotFound, "render not found")
	}

	c.Set("Content-Type", "image/png")
	return c.SendFile(h.storage.RenderPath(projectID, wallID))
}

// ============================================================
// Helpers
// ============================================================

func (h *PlannerHandler) loadProject(c fiber.Ctx, id string) (*models.Project, error) {
	project, err := h.store.Get(c.Context(), id)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return project, nil
}

func decodeBody(c fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return fiber.NewError(http.StatusBadRequest, "empty body")
	}
	if err := json.Unmarshal(c.Body(), v); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid json")
	}
	return nil
}

// toHTTPError переводит доменные ошибки в коды ответа.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fiber.NewError(http.StatusNotFound, "project not found")
	case errors.Is(err, service.ErrFileNotFound):
		return fiber.NewError(http.StatusNotFound, "wall image file not found")
	case errors.Is(err, service.ErrMissingWallImage):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidName):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, render.ErrDecode):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
