package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
	"taskboard/pkg/config"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	tasks := api.Group("/tasks")
	tasks.Use(middleware.Auth(cfg.JWT.Secret))
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
