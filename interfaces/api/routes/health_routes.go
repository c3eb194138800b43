package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/pkg/config"
)

func SetupHealthRoutes(app *fiber.App, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to " + cfg.App.Name,
			"api":     "/api/v1",
			"health":  "/health",
		})
	})
}
