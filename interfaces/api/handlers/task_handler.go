package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskboard/domain/apperrors"
	"taskboard/domain/dto"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	subject := utils.SubjectFromContext(c)

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	task, err := h.taskService.CreateTask(ctx, subject, &req)
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	subject := utils.SubjectFromContext(c)

	taskID := c.Params("id")
	if taskID == "" {
		return utils.BadRequestResponse(c, "Task ID is required")
	}

	task, err := h.taskService.GetTask(ctx, subject, taskID)
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	subject := utils.SubjectFromContext(c)

	taskID := c.Params("id")
	if taskID == "" {
		return utils.BadRequestResponse(c, "Task ID is required")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "task_id", taskID, "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	task, err := h.taskService.UpdateTask(ctx, subject, taskID, &req)
	if err != nil {
		return h.respondError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	subject := utils.SubjectFromContext(c)

	taskID := c.Params("id")
	if taskID == "" {
		return utils.BadRequestResponse(c, "Task ID is required")
	}

	if err := h.taskService.DeleteTask(ctx, subject, taskID); err != nil {
		return h.respondError(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()
	subject := utils.SubjectFromContext(c)

	var filter dto.TaskFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	tasks, nextToken, err := h.taskService.ListTasks(ctx, subject, &filter)
	if err != nil {
		return h.respondError(c, err)
	}

	taskResponses := make([]dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		taskResponses[i] = *dto.TaskToTaskResponse(task)
	}

	return utils.SuccessResponse(c, dto.TaskListResponse{
		Tasks:     taskResponses,
		Count:     len(taskResponses),
		NextToken: nextToken,
	})
}

// respondError maps a service outcome onto the transport response.
func (h *TaskHandler) respondError(c *fiber.Ctx, err error) error {
	switch {
	case apperrors.IsValidation(err):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCursor):
		return utils.BadRequestResponse(c, "Invalid pagination token")
	case errors.Is(err, apperrors.ErrTaskNotFound):
		return utils.NotFoundResponse(c, "Task not found")
	case errors.Is(err, apperrors.ErrForbidden):
		return utils.ForbiddenResponse(c, "You do not have permission to access this task")
	case errors.Is(err, apperrors.ErrTaskExists):
		return utils.ConflictResponse(c, "Task with this ID already exists")
	default:
		logger.ErrorContext(c.UserContext(), "Task operation failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}
