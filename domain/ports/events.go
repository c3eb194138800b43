package ports

import "context"

// Task event types
const (
	TaskEventCreated = "created"
	TaskEventUpdated = "updated"
	TaskEventDeleted = "deleted"
)

type TaskEvent struct {
	Type       string `json:"type"`
	TaskID     string `json:"taskId"`
	OwnerID    string `json:"ownerId"`
	OccurredAt string `json:"occurredAt"`
}

// TaskEventPublisherPort broadcasts task lifecycle events. Publishing is
// best-effort: a failed publish never fails the operation that triggered it.
type TaskEventPublisherPort interface {
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error
}
