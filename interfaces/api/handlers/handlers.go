package handlers

import (
	"taskboard/domain/services"
)

// Services contains everything the handlers depend on.
type Services struct {
	TaskService services.TaskService
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	TaskHandler *TaskHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		TaskHandler: NewTaskHandler(services.TaskService),
	}
}
