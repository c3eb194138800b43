package services

import (
	"context"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, subject models.Subject, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, subject models.Subject, taskID string) (*models.Task, error)
	UpdateTask(ctx context.Context, subject models.Subject, taskID string, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, subject models.Subject, taskID string) error
	ListTasks(ctx context.Context, subject models.Subject, filter *dto.TaskFilterRequest) ([]*models.Task, string, error)
}
