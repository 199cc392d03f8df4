package pocketbase

import (
	"fmt"
	"time"

	"life-manager/internal/model"
	"life-manager/internal/task/repository"
)

// storeDateLayout is PocketBase's native datetime representation.
const storeDateLayout = "2006-01-02 15:04:05.000Z"

// toStoreDate serializes an RFC3339 string into the store's native datetime
// format. Unparsable or empty values pass through unchanged so the store's
// own validation reports them.
func toStoreDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.UTC().Format(storeDateLayout)
}

// fromStoreDate normalizes a store-side datetime back to RFC3339 so callers
// always see ISO-8601 strings regardless of the store's representation.
func fromStoreDate(s string) string {
	if s == "" {
		return ""
	}
	if t, err := time.Parse(storeDateLayout, s); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	return s
}

// taskToRecord maps a validated task to the store's record shape, converting
// every date-typed field uniformly.
func taskToRecord(t model.StructuredTask) TaskRecord {
	return TaskRecord{
		Title:                 t.Title,
		Outcome:               t.Outcome,
		Section:               string(t.Section),
		Intensity:             t.Intensity,
		Tags:                  t.Tags,
		DueDate:               toStoreDate(t.DueDate),
		EstimatedTime:         t.EstimatedTime,
		IsTask:                t.IsTask,
		OriginalTranscription: t.OriginalTranscription,
		ProcessedAt:           toStoreDate(t.ProcessedAt),
		LLMModel:              t.LLMModel,
		ProcessingConfidence:  t.ProcessingConfidence,
		Status:                string(t.Status),
		UserID:                t.UserID,
	}
}

// recordToTask maps a store record back to the domain shape, normalizing
// every date-typed field to RFC3339.
func recordToTask(rec *TaskRecord) model.StructuredTask {
	return model.StructuredTask{
		ID:                    rec.ID,
		Title:                 rec.Title,
		Outcome:               rec.Outcome,
		Section:               model.Section(rec.Section),
		Intensity:             rec.Intensity,
		Tags:                  rec.Tags,
		DueDate:               fromStoreDate(rec.DueDate),
		EstimatedTime:         rec.EstimatedTime,
		IsTask:                rec.IsTask,
		OriginalTranscription: rec.OriginalTranscription,
		ProcessedAt:           fromStoreDate(rec.ProcessedAt),
		LLMModel:              rec.LLMModel,
		ProcessingConfidence:  rec.ProcessingConfidence,
		Status:                model.Status(rec.Status),
		UserID:                rec.UserID,
		Created:               fromStoreDate(rec.Created),
		Updated:               fromStoreDate(rec.Updated),
	}
}

// buildFilter builds the store-side filter expression. Present filters are
// ANDed as equality predicates; absent ones are omitted entirely.
func buildFilter(opt repository.ListOptions) string {
	filter := ""
	if opt.Status != "" {
		filter += fmt.Sprintf("status = %q", opt.Status)
	}
	if opt.Section != "" {
		if filter != "" {
			filter += " && "
		}
		filter += fmt.Sprintf("section = %q", opt.Section)
	}
	if opt.Intensity != 0 {
		if filter != "" {
			filter += " && "
		}
		filter += fmt.Sprintf("intensity = %d", opt.Intensity)
	}
	if opt.UserID != "" {
		if filter != "" {
			filter += " && "
		}
		filter += fmt.Sprintf("userId = %q", opt.UserID)
	}
	return filter
}
