package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/domain/apperrors"
	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/pkg/utils"
)

// stubTaskService returns canned results so the tests exercise only the
// transport mapping.
type stubTaskService struct {
	task      *models.Task
	tasks     []*models.Task
	nextToken string
	err       error

	gotSubject models.Subject
	gotCreate  *dto.CreateTaskRequest
	gotUpdate  *dto.UpdateTaskRequest
	gotFilter  *dto.TaskFilterRequest
}

func (s *stubTaskService) CreateTask(ctx context.Context, subject models.Subject, req *dto.CreateTaskRequest) (*models.Task, error) {
	s.gotSubject = subject
	s.gotCreate = req
	return s.task, s.err
}

func (s *stubTaskService) GetTask(ctx context.Context, subject models.Subject, taskID string) (*models.Task, error) {
	s.gotSubject = subject
	return s.task, s.err
}

func (s *stubTaskService) UpdateTask(ctx context.Context, subject models.Subject, taskID string, req *dto.UpdateTaskRequest) (*models.Task, error) {
	s.gotSubject = subject
	s.gotUpdate = req
	return s.task, s.err
}

func (s *stubTaskService) DeleteTask(ctx context.Context, subject models.Subject, taskID string) error {
	s.gotSubject = subject
	return s.err
}

func (s *stubTaskService) ListTasks(ctx context.Context, subject models.Subject, filter *dto.TaskFilterRequest) ([]*models.Task, string, error) {
	s.gotSubject = subject
	s.gotFilter = filter
	return s.tasks, s.nextToken, s.err
}

func sampleTask() *models.Task {
	return &models.Task{
		ID:        "task-1",
		OwnerID:   "user-1",
		Title:     "Buy milk",
		Status:    models.StatusPending,
		Priority:  models.PriorityMedium,
		CreatedAt: "2024-05-20T10:30:00.000Z",
		UpdatedAt: "2024-05-20T10:30:00.000Z",
	}
}

func newTestApp(svc *stubTaskService, subject models.Subject) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("subject", subject)
		return c.Next()
	})

	h := NewTaskHandler(svc)
	app.Post("/tasks", h.CreateTask)
	app.Get("/tasks", h.ListTasks)
	app.Get("/tasks/:id", h.GetTask)
	app.Put("/tasks/:id", h.UpdateTask)
	app.Delete("/tasks/:id", h.DeleteTask)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, utils.Response) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed utils.Response
	if resp.StatusCode != fiber.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	}
	return resp, parsed
}

func TestCreateTaskReturns201(t *testing.T) {
	svc := &stubTaskService{task: sampleTask()}
	app := newTestApp(svc, models.Subject{ID: "user-1"})

	resp, body := doJSON(t, app, fiber.MethodPost, "/tasks", fiber.Map{"title": "Buy milk"})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, body.Success)
	require.NotNil(t, svc.gotCreate)
	assert.Equal(t, "Buy milk", svc.gotCreate.Title)
	assert.Equal(t, "user-1", svc.gotSubject.ID)
}

func TestCreateTaskMissingTitleReturns400(t *testing.T) {
	svc := &stubTaskService{task: sampleTask()}
	app := newTestApp(svc, models.Subject{ID: "user-1"})

	resp, body := doJSON(t, app, fiber.MethodPost, "/tasks", fiber.Map{"description": "no title"})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, utils.ErrCodeValidation, body.Error.Code)
	// The request never reached the service.
	assert.Nil(t, svc.gotCreate)
}

func TestCreateTaskConflictReturns409(t *testing.T) {
	svc := &stubTaskService{err: apperrors.ErrTaskExists}
	app := newTestApp(svc, models.Subject{ID: "user-1"})

	resp, body := doJSON(t, app, fiber.MethodPost, "/tasks", fiber.Map{"title": "Buy milk"})

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, utils.ErrCodeConflict, body.Error.Code)
}

func TestGetTaskReturns200(t *testing.T) {
	svc := &stubTaskService{task: sampleTask()}
	app := newTestApp(svc, models.Subject{ID: "user-1"})

	resp, body := doJSON(t, app, fiber.MethodGet, "/tasks/task-1", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, body.Success)

	data, err := json.Marshal(body.Data)
	require.NoError(t, err)
	var task dto.TaskResponse
	require.NoError(t, json.Unmarshal(data, &task))
	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, "Buy milk", task.Title)
}

func TestGetTaskOutcomeStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperrors.ErrTaskNotFound, fiber.StatusNotFound, utils.ErrCodeNotFound},
		{"forbidden", apperrors.ErrForbidden, fiber.StatusForbidden, utils.ErrCodeForbidden},
		{"store throttled", apperrors.ErrStoreThrottled, fiber.StatusInternalServerError, utils.ErrCodeInternalError},
		{"store unavailable", apperrors.ErrStoreUnavailable, fiber.StatusInternalServerError, utils.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubTaskService{err: tt.err}
			app := newTestApp(svc, models.Subject{ID: "user-1"})

			resp, body := doJSON(t, app, fiber.MethodGet, "/tasks/task-1", nil)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestUpdateTaskValidationErrorReturns400(t *testing.T) {
	svc := &stubTaskService{err: apperrors.NewValidation("No update data provided")}
	app := newTestApp(svc, models.Subject{ID: "user-1"})

	resp, body := doJSON(t, app, fiber.MethodPut, "/tasks/task-1", fiber.Map{})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "No update data provided", body.Error.Message)
}

func TestUpdateTaskPassesOnlyPresentFields(t *testing.T) {
	svc := &stubTaskService{task: sampleTask()}
	app := newTestApp(svc, models.Subject{ID: "user-1"})

	resp, _ := doJSON(t, app, fiber.MethodPut, "/tasks/task-1", fiber.Map{"status": models.StatusCompleted})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, svc.gotUpdate)
	require.NotNil(t, svc.gotUpdate.Status)
	assert.Equal(t, models.StatusCompleted, *svc.gotUpdate.Status)
	assert.Nil(t, svc.gotUpdate.Title)
	assert.Nil(t, svc.gotUpdate.Description)
	assert.Nil(t, svc.gotUpdate.Priority)
	assert.Nil(t, svc.gotUpdate.DueDate)
}

func TestDeleteTaskReturns204(t *testing.T) {
	svc := &stubTaskService{}
	app := newTestApp(svc, models.Subject{ID: "user-1"})

	resp, _ := doJSON(t, app, fiber.MethodDelete, "/tasks/task-1", nil)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestListTasksReturnsEnvelopeWithToken(t *testing.T) {
	svc := &stubTaskService{
		tasks:     []*models.Task{sampleTask()},
		nextToken: "opaque-token",
	}
	app := newTestApp(svc, models.Subject{ID: "user-1"})

	resp, body := doJSON(t, app, fiber.MethodGet, "/tasks?status=PENDING&limit=10", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, svc.gotFilter)
	assert.Equal(t, models.StatusPending, svc.gotFilter.Status)
	assert.Equal(t, 10, svc.gotFilter.Limit)

	data, err := json.Marshal(body.Data)
	require.NoError(t, err)
	var list dto.TaskListResponse
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, "opaque-token", list.NextToken)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, "task-1", list.Tasks[0].ID)
}

func TestListTasksBadTokenReturns400(t *testing.T) {
	svc := &stubTaskService{err: apperrors.ErrInvalidCursor}
	app := newTestApp(svc, models.Subject{ID: "user-1"})

	resp, body := doJSON(t, app, fiber.MethodGet, "/tasks?nextToken=garbage", nil)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Invalid pagination token", body.Error.Message)
}
