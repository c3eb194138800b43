package models

// Task statuses
const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// Task priorities
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// AnonymousOwner is the owner recorded for tasks created without an
// authenticated subject.
const AnonymousOwner = "anonymous"

var (
	ValidStatuses   = []string{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}
	ValidPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
)

// Task is the stored record. Timestamps are ISO 8601 strings so the wire
// format and the stored format stay identical.
type Task struct {
	ID          string  `json:"id" dynamodbav:"id"`
	OwnerID     string  `json:"ownerId" dynamodbav:"ownerId"`
	Title       string  `json:"title" dynamodbav:"title"`
	Description string  `json:"description" dynamodbav:"description"`
	Status      string  `json:"status" dynamodbav:"status"`
	Priority    string  `json:"priority" dynamodbav:"priority"`
	DueDate     *string `json:"dueDate,omitempty" dynamodbav:"dueDate,omitempty"`
	CreatedAt   string  `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   string  `json:"updatedAt" dynamodbav:"updatedAt"`
}

// IsValidStatus reports whether s is a member of the status enumeration.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsValidPriority reports whether p is a member of the priority enumeration.
func IsValidPriority(p string) bool {
	for _, v := range ValidPriorities {
		if p == v {
			return true
		}
	}
	return false
}
