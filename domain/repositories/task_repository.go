package repositories

import (
	"context"

	"taskboard/domain/models"
)

// Mutation is one field assignment applied by UpdateIfExists. The store
// adapter translates the list into a single atomic update expression.
type Mutation struct {
	Field string
	Value interface{}
}

// Page is one slice of a paginated listing. NextCursor is the store's opaque
// resume position, empty once the traversal is exhausted.
type Page struct {
	Tasks      []*models.Task
	NextCursor string
}

// TaskRepository is the narrow surface the core uses against the key-value
// store. All mutations are existence-conditioned: the condition is the only
// concurrency-safety mechanism, there is no in-process locking above it.
type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*models.Task, error)

	// PutIfAbsent writes the record only if no record with that id exists.
	// Returns apperrors.ErrTaskExists when the key is already taken.
	PutIfAbsent(ctx context.Context, task *models.Task) error

	// UpdateIfExists atomically applies all mutations if the record still
	// exists and returns the post-mutation record. Returns
	// apperrors.ErrTaskNotFound when it does not.
	UpdateIfExists(ctx context.Context, id string, mutations []Mutation) (*models.Task, error)

	// DeleteIfExists removes the record, failing with
	// apperrors.ErrTaskNotFound if it is already gone.
	DeleteIfExists(ctx context.Context, id string) error

	// QueryByOwner retrieves one owner's tasks through the owner index.
	QueryByOwner(ctx context.Context, ownerID, status string, limit int32, cursor string) (*Page, error)

	// ScanAll walks the whole table, optionally filtering by owner and
	// status. Correctness-equivalent to QueryByOwner, but unindexed.
	ScanAll(ctx context.Context, ownerID, status string, limit int32, cursor string) (*Page, error)
}
