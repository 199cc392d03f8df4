package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidStatus = errors.New("valid status is required (pending, in_progress, completed, cancelled)")
	ErrEmptyBatch    = errors.New("transcriptions array is required and cannot be empty")
	ErrBatchTooLarge = errors.New("maximum 10 transcriptions allowed per batch")
)
