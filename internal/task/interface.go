package task

import (
	"context"

	"life-manager/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Process validates the input, runs the transcription through the LLM
	// extraction pipeline and persists the resulting task when one is found.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)

	// BatchProcess runs the full pipeline over each input sequentially.
	// One item's failure is recorded per-item and does not abort the batch.
	BatchProcess(ctx context.Context, input BatchInput) (BatchOutput, error)

	// List returns a page of persisted tasks, newest first.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Detail fetches one task by id.
	Detail(ctx context.Context, id string) (model.StructuredTask, error)

	// UpdateStatus transitions a task's status. This is the only mutation
	// path after creation.
	UpdateStatus(ctx context.Context, id string, status model.Status) (model.StructuredTask, error)
}
