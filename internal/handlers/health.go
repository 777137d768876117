package handlers

import (
	"zfunds/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports service and database liveness.
func HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := repositories.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
