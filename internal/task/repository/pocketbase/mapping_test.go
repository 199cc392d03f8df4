package pocketbase

import (
	"testing"

	"life-manager/internal/model"
	"life-manager/internal/task/repository"
)

func TestStoreDateRoundTrip(t *testing.T) {
	iso := "2026-08-30T17:00:00Z"

	stored := toStoreDate(iso)
	if stored != "2026-08-30 17:00:00.000Z" {
		t.Errorf("toStoreDate(%q) = %q", iso, stored)
	}

	back := fromStoreDate(stored)
	if back != iso {
		t.Errorf("round trip: %q -> %q -> %q", iso, stored, back)
	}
}

func TestToStoreDateNormalizesOffset(t *testing.T) {
	got := toStoreDate("2026-08-30T19:00:00+02:00")
	if got != "2026-08-30 17:00:00.000Z" {
		t.Errorf("toStoreDate = %q, want UTC normalization", got)
	}
}

func TestStoreDatePassthrough(t *testing.T) {
	// Values neither side can parse pass through for the store to reject.
	if got := toStoreDate("not a date"); got != "not a date" {
		t.Errorf("toStoreDate passthrough = %q", got)
	}
	if got := fromStoreDate("not a date"); got != "not a date" {
		t.Errorf("fromStoreDate passthrough = %q", got)
	}
	if got := toStoreDate(""); got != "" {
		t.Errorf("toStoreDate(\"\") = %q", got)
	}
}

func TestTaskRecordRoundTrip(t *testing.T) {
	in := model.StructuredTask{
		Title:                 "Buy groceries",
		Outcome:               "Fridge stocked",
		Section:               model.SectionToday,
		Intensity:             3,
		Tags:                  "errands",
		DueDate:               "2026-08-30T17:00:00Z",
		EstimatedTime:         45,
		IsTask:                true,
		OriginalTranscription: "buy groceries",
		ProcessedAt:           "2026-08-29T10:00:00Z",
		LLMModel:              "gpt-4o-mini",
		ProcessingConfidence:  0.9,
		Status:                model.StatusPending,
		UserID:                "user1",
	}

	rec := taskToRecord(in)
	if rec.DueDate != "2026-08-30 17:00:00.000Z" {
		t.Errorf("record dueDate = %q", rec.DueDate)
	}
	if rec.ProcessedAt != "2026-08-29 10:00:00.000Z" {
		t.Errorf("record processedAt = %q", rec.ProcessedAt)
	}

	rec.ID = "rec1"
	out := recordToTask(&rec)
	if out.DueDate != in.DueDate {
		t.Errorf("dueDate round trip: %q", out.DueDate)
	}
	if out.ProcessedAt != in.ProcessedAt {
		t.Errorf("processedAt round trip: %q", out.ProcessedAt)
	}
	if out.Section != in.Section || out.Status != in.Status || out.Title != in.Title {
		t.Errorf("fields lost: %+v", out)
	}
}

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name string
		opt  repository.ListOptions
		want string
	}{
		{"no filters", repository.ListOptions{}, ""},
		{"status only", repository.ListOptions{Status: "pending"}, `status = "pending"`},
		{"section only", repository.ListOptions{Section: "today"}, `section = "today"`},
		{"intensity only", repository.ListOptions{Intensity: 3}, `intensity = 3`},
		{
			"all filters",
			repository.ListOptions{Status: "pending", Section: "today", Intensity: 3, UserID: "u1"},
			`status = "pending" && section = "today" && intensity = 3 && userId = "u1"`,
		},
		{
			"skips absent middle filter",
			repository.ListOptions{Status: "pending", UserID: "u1"},
			`status = "pending" && userId = "u1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildFilter(tt.opt); got != tt.want {
				t.Errorf("buildFilter() = %q, want %q", got, tt.want)
			}
		})
	}
}
