package usecase

import (
	"context"
	"errors"

	"life-manager/internal/model"
	"life-manager/internal/task"
	"life-manager/internal/task/repository"
)

// List returns a page of persisted tasks, newest created first.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	result, err := uc.repo.List(ctx, repository.ListOptions{
		Status:    input.Status,
		Section:   input.Section,
		Intensity: input.Intensity,
		UserID:    input.UserID,
		Page:      input.Page,
		PerPage:   input.PerPage,
	})
	if err != nil {
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:      result.Tasks,
		Page:       result.Page,
		PerPage:    result.PerPage,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	}, nil
}

// Detail fetches one task by id.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.StructuredTask, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.StructuredTask{}, task.ErrTaskNotFound
		}
		return model.StructuredTask{}, err
	}
	return t, nil
}

// UpdateStatus transitions a task's status. Values outside the enumerated
// set are rejected before the store is touched.
func (uc *implUseCase) UpdateStatus(ctx context.Context, id string, status model.Status) (model.StructuredTask, error) {
	if !status.Valid() {
		return model.StructuredTask{}, task.ErrInvalidStatus
	}

	t, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.StructuredTask{}, task.ErrTaskNotFound
		}
		return model.StructuredTask{}, err
	}

	uc.l.Infof(ctx, "UpdateStatus: task %s -> %s", id, status)
	return t, nil
}
