package serviceimpl

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/apperrors"
	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo      repositories.TaskRepository
	events        ports.TaskEventPublisherPort
	useOwnerIndex bool

	// injectable for tests
	now   func() time.Time
	newID func() string
}

// NewTaskService wires the task operations. events may be nil when no
// broker is configured. useOwnerIndex signals that the deployment carries
// the owner index required for the indexed listing path.
func NewTaskService(taskRepo repositories.TaskRepository, events ports.TaskEventPublisherPort, useOwnerIndex bool) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:      taskRepo,
		events:        events,
		useOwnerIndex: useOwnerIndex,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, subject models.Subject, req *dto.CreateTaskRequest) (*models.Task, error) {
	if err := req.Validate(); err != nil {
		logger.WarnContext(ctx, "Task validation failed", "owner_id", subject.ID, "error", err)
		return nil, err
	}

	timestamp := s.now().UTC().Format(timestampLayout)
	task := &models.Task{
		ID:          s.newID(),
		OwnerID:     subject.ID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Status:      req.Status,
		Priority:    req.Priority,
		CreatedAt:   timestamp,
		UpdatedAt:   timestamp,
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if req.DueDate != nil && *req.DueDate != "" {
		task.DueDate = req.DueDate
	}

	// The conditional put is the only duplicate-id defense. A conflict here
	// means the generated id collided with an existing record.
	if err := s.taskRepo.PutIfAbsent(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "task_id", task.ID, "owner_id", subject.ID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "owner_id", subject.ID)
	s.publishEvent(ctx, ports.TaskEventCreated, task)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, subject models.Subject, taskID string) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !canAccess(subject, task) {
		logger.WarnContext(ctx, "Task access denied", "task_id", taskID, "subject_id", subject.ID)
		return nil, apperrors.ErrForbidden
	}
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, subject models.Subject, taskID string, req *dto.UpdateTaskRequest) (*models.Task, error) {
	if err := req.Validate(); err != nil {
		logger.WarnContext(ctx, "Task validation failed", "task_id", taskID, "error", err)
		return nil, err
	}

	// Fetch first so authorization happens before any mutation.
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !canAccess(subject, task) {
		logger.WarnContext(ctx, "Task access denied", "task_id", taskID, "subject_id", subject.ID)
		return nil, apperrors.ErrForbidden
	}

	// The record can be deleted between the authorizing fetch and this
	// conditional update. The store reports that as not-found, which is the
	// correct caller-visible outcome for the race.
	updated, err := s.taskRepo.UpdateIfExists(ctx, taskID, buildTaskMutations(req, s.now()))
	if err != nil {
		logger.WarnContext(ctx, "Task update failed", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)
	s.publishEvent(ctx, ports.TaskEventUpdated, updated)

	return updated, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, subject models.Subject, taskID string) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !canAccess(subject, task) {
		logger.WarnContext(ctx, "Task access denied", "task_id", taskID, "subject_id", subject.ID)
		return apperrors.ErrForbidden
	}

	// Same benign race as update: deleted-in-between surfaces as not-found.
	if err := s.taskRepo.DeleteIfExists(ctx, taskID); err != nil {
		logger.WarnContext(ctx, "Task deletion failed", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)
	s.publishEvent(ctx, ports.TaskEventDeleted, task)

	return nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, subject models.Subject, filter *dto.TaskFilterRequest) ([]*models.Task, string, error) {
	scope := listScopeFor(subject)

	plan, err := planTaskList(scope, filter.Status, filter.Limit, filter.NextToken, s.useOwnerIndex)
	if err != nil {
		logger.WarnContext(ctx, "Rejected pagination token", "subject_id", subject.ID, "error", err)
		return nil, "", err
	}

	var page *repositories.Page
	if plan.UseIndex {
		page, err = s.taskRepo.QueryByOwner(ctx, plan.OwnerID, plan.Status, plan.Limit, plan.Cursor)
	} else {
		page, err = s.taskRepo.ScanAll(ctx, plan.OwnerID, plan.Status, plan.Limit, plan.Cursor)
	}
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "subject_id", subject.ID, "indexed", plan.UseIndex, "error", err)
		return nil, "", err
	}

	return page.Tasks, encodeListToken(page.NextCursor), nil
}

func (s *TaskServiceImpl) publishEvent(ctx context.Context, eventType string, task *models.Task) {
	if s.events == nil {
		return
	}
	event := &ports.TaskEvent{
		Type:       eventType,
		TaskID:     task.ID,
		OwnerID:    task.OwnerID,
		OccurredAt: s.now().UTC().Format(timestampLayout),
	}
	if err := s.events.PublishTaskEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish task event", "task_id", task.ID, "type", eventType, "error", err)
	}
}
