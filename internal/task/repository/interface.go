package repository

import (
	"context"

	"life-manager/internal/model"
)

// TaskRepository is the interface for task persistence.
type TaskRepository interface {
	// Save creates a new record and returns it with its assigned id and
	// created/updated timestamps. Status is forced to pending on creation.
	Save(ctx context.Context, t model.StructuredTask) (model.StructuredTask, error)

	// Get fetches one record by id. Returns ErrNotFound when absent.
	Get(ctx context.Context, id string) (model.StructuredTask, error)

	// List returns a filtered, paginated page of records sorted by newest
	// created first.
	List(ctx context.Context, opt ListOptions) (ListResult, error)

	// UpdateStatus patches only the status field of an existing record.
	UpdateStatus(ctx context.Context, id string, status model.Status) (model.StructuredTask, error)
}
