package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/freshstack/site-platform/internal/database"
	"github.com/freshstack/site-platform/internal/dto"
)

const version = "1.4.0"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:   "ok",
		Database: dbStatus,
		Version:  version,
	})
}
