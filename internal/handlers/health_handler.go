package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-optimizer/internal/models"
)

const Version = "1.0.0"

// HandleHealth handles GET /health. It never depends on configuration.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:  "healthy",
		Version: Version,
	})
}
