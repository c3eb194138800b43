package dto

import (
	"strings"
	"time"

	"taskboard/domain/apperrors"
	"taskboard/domain/models"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 1000
)

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// UpdateTaskRequest uses pointers so a field can be absent, as opposed to
// present with a zero value. Only present fields are written to the store.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

type TaskFilterRequest struct {
	Status    string `query:"status"`
	Limit     int    `query:"limit"`
	NextToken string `query:"nextToken"`
}

type TaskResponse struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"ownerId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type TaskListResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	Count     int            `json:"count"`
	NextToken string         `json:"nextToken,omitempty"`
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:          task.ID,
		OwnerID:     task.OwnerID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// Validate applies the creation rules. Title is mandatory; the remaining
// fields only need to be valid when supplied.
func (r *CreateTaskRequest) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return apperrors.NewValidation("Task title is required")
	}
	if len(title) > maxTitleLength {
		return apperrors.NewValidation("Task title must be less than %d characters", maxTitleLength)
	}
	if len(r.Description) > maxDescriptionLength {
		return apperrors.NewValidation("Task description must be less than %d characters", maxDescriptionLength)
	}
	if r.Status != "" && !models.IsValidStatus(r.Status) {
		return statusValidationError()
	}
	if r.Priority != "" && !models.IsValidPriority(r.Priority) {
		return priorityValidationError()
	}
	if r.DueDate != nil && *r.DueDate != "" && !isValidDate(*r.DueDate) {
		return apperrors.NewValidation("Due date must be a valid date")
	}
	return nil
}

// Validate applies the partial-update rules. Every field may be absent, but
// a present field must hold a valid value and at least one field must be
// present.
func (r *UpdateTaskRequest) Validate() error {
	if r.IsEmpty() {
		return apperrors.NewValidation("No update data provided")
	}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return apperrors.NewValidation("Task title cannot be empty")
		}
		if len(title) > maxTitleLength {
			return apperrors.NewValidation("Task title must be less than %d characters", maxTitleLength)
		}
	}
	if r.Description != nil && len(*r.Description) > maxDescriptionLength {
		return apperrors.NewValidation("Task description must be less than %d characters", maxDescriptionLength)
	}
	if r.Status != nil && !models.IsValidStatus(*r.Status) {
		return statusValidationError()
	}
	if r.Priority != nil && !models.IsValidPriority(*r.Priority) {
		return priorityValidationError()
	}
	if r.DueDate != nil && *r.DueDate != "" && !isValidDate(*r.DueDate) {
		return apperrors.NewValidation("Due date must be a valid date")
	}
	return nil
}

// IsEmpty reports whether no recognized field is present.
func (r *UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Status == nil &&
		r.Priority == nil && r.DueDate == nil
}

func statusValidationError() error {
	return apperrors.NewValidation("Status must be one of: %s", strings.Join(models.ValidStatuses, ", "))
}

func priorityValidationError() error {
	return apperrors.NewValidation("Priority must be one of: %s", strings.Join(models.ValidPriorities, ", "))
}

func isValidDate(s string) bool {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
