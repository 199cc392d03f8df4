package pocketbase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"life-manager/internal/model"
	"life-manager/internal/task/repository"
	"life-manager/internal/task/schema"
	pkgLog "life-manager/pkg/log"
)

type implRepository struct {
	client     *Client
	collection string
	adminEmail string
	adminPass  string
	l          pkgLog.Logger

	// Admin auth happens once, on first use. The once guard removes the
	// cold-start race when parallel requests hit an unauthenticated client.
	initOnce sync.Once
	initErr  error
}

// New creates a new PocketBase-backed task repository.
func New(client *Client, collection, adminEmail, adminPass string, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client:     client,
		collection: collection,
		adminEmail: adminEmail,
		adminPass:  adminPass,
		l:          l,
	}
}

func (r *implRepository) ensureInit(ctx context.Context) error {
	r.initOnce.Do(func() {
		if r.adminEmail == "" || r.adminPass == "" {
			return // anonymous access, rely on collection rules
		}
		if err := r.client.AuthWithPassword(ctx, r.adminEmail, r.adminPass); err != nil {
			r.l.Errorf(ctx, "pocketbase repository: admin auth failed: %v", err)
			r.initErr = err
			return
		}
		r.l.Infof(ctx, "pocketbase repository: admin authenticated")
	})
	return r.initErr
}

func (r *implRepository) Save(ctx context.Context, t model.StructuredTask) (model.StructuredTask, error) {
	if err := r.ensureInit(ctx); err != nil {
		return model.StructuredTask{}, err
	}

	// New records always start pending, whatever the caller supplied.
	t.Status = model.StatusPending

	// Defense in depth: the store must never receive a record the schema
	// rejects, even if the extraction pipeline already validated it.
	if err := schema.ValidateTaskOutput(t); err != nil {
		return model.StructuredTask{}, err
	}

	rec, err := r.client.CreateRecord(ctx, r.collection, taskToRecord(t))
	if err != nil {
		r.l.Errorf(ctx, "pocketbase repository: failed to create record: %v", err)
		return model.StructuredTask{}, fmt.Errorf("failed to save task: %w", err)
	}

	return recordToTask(rec), nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.StructuredTask, error) {
	if err := r.ensureInit(ctx); err != nil {
		return model.StructuredTask{}, err
	}

	rec, err := r.client.GetRecord(ctx, r.collection, id)
	if err != nil {
		return model.StructuredTask{}, mapNotFound(err)
	}
	return recordToTask(rec), nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) (repository.ListResult, error) {
	if err := r.ensureInit(ctx); err != nil {
		return repository.ListResult{}, err
	}

	page := opt.Page
	if page <= 0 {
		page = 1
	}
	perPage := opt.PerPage
	if perPage <= 0 {
		perPage = 20
	}

	resp, err := r.client.ListRecords(ctx, r.collection, ListQuery{
		Page:    page,
		PerPage: perPage,
		Filter:  buildFilter(opt),
		Sort:    "-created",
	})
	if err != nil {
		r.l.Errorf(ctx, "pocketbase repository: failed to list records: %v", err)
		return repository.ListResult{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]model.StructuredTask, 0, len(resp.Items))
	for i := range resp.Items {
		tasks = append(tasks, recordToTask(&resp.Items[i]))
	}

	return repository.ListResult{
		Tasks:      tasks,
		Page:       resp.Page,
		PerPage:    resp.PerPage,
		TotalItems: resp.TotalItems,
		TotalPages: resp.TotalPages,
	}, nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, id string, status model.Status) (model.StructuredTask, error) {
	if err := r.ensureInit(ctx); err != nil {
		return model.StructuredTask{}, err
	}

	rec, err := r.client.UpdateRecord(ctx, r.collection, id, map[string]any{
		"status": string(status),
	})
	if err != nil {
		return model.StructuredTask{}, mapNotFound(err)
	}
	return recordToTask(rec), nil
}

// mapNotFound translates the store's 404 into the repository sentinel.
func mapNotFound(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return repository.ErrNotFound
	}
	return err
}
