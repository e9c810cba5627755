package handlers

import (
	"net/http"
	"os"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

type HealthHandler struct {
	uploadsDir string
}

func NewHealthHandler(uploadsDir string) *HealthHandler {
	return &HealthHandler{uploadsDir: uploadsDir}
}

// LivenessProbe проверяет, что приложение работает
func (h *HealthHandler) LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessProbe проверяет, что каталог загрузок доступен
func (h *HealthHandler) ReadinessProbe(c fiber.Ctx) error {
	info, err := os.Stat(h.uploadsDir)
	if err != nil || !info.IsDir() {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "uploads dir unavailable",
		})
	}
	return c.JSON(fiber.Map{
		"status": "ready",
	})
}
