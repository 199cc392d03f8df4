package usecase

import (
	"context"
	"errors"
	"testing"

	"life-manager/internal/model"
	"life-manager/internal/task"
	"life-manager/internal/task/repository"
)

func TestListForwardsFilters(t *testing.T) {
	repo := &mockRepo{listResult: repository.ListResult{Page: 2, PerPage: 5, TotalItems: 11, TotalPages: 3}}
	uc := newTestUseCase(&mockLLM{}, repo)

	out, err := uc.List(context.Background(), task.ListInput{
		Status:    "pending",
		Section:   "today",
		Intensity: 3,
		UserID:    "user1",
		Page:      2,
		PerPage:   5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.listOpts.Status != "pending" || repo.listOpts.Section != "today" ||
		repo.listOpts.Intensity != 3 || repo.listOpts.UserID != "user1" {
		t.Errorf("filters not forwarded: %+v", repo.listOpts)
	}
	if out.Page != 2 || out.TotalItems != 11 || out.TotalPages != 3 {
		t.Errorf("pagination not forwarded: %+v", out)
	}
}

func TestDetailNotFound(t *testing.T) {
	repo := &mockRepo{getErr: repository.ErrNotFound}
	uc := newTestUseCase(&mockLLM{}, repo)

	_, err := uc.Detail(context.Background(), "missing")
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdateStatusRejectsInvalidValue(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(&mockLLM{}, repo)

	_, err := uc.UpdateStatus(context.Background(), "rec1", model.Status("done"))
	if !errors.Is(err, task.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := &mockRepo{updateErr: repository.ErrNotFound}
	uc := newTestUseCase(&mockLLM{}, repo)

	_, err := uc.UpdateStatus(context.Background(), "missing", model.StatusCompleted)
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdateStatusSuccess(t *testing.T) {
	repo := &mockRepo{updateResult: model.StructuredTask{ID: "rec1", Status: model.StatusCompleted}}
	uc := newTestUseCase(&mockLLM{}, repo)

	got, err := uc.UpdateStatus(context.Background(), "rec1", model.StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.StatusCompleted {
		t.Errorf("status = %q", got.Status)
	}
}
