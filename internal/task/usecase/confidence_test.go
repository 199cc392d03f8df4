package usecase

import (
	"math"
	"testing"

	"github.com/tidwall/gjson"

	"life-manager/pkg/openai"
)

func TestComputeConfidence(t *testing.T) {
	fullTask := `{
		"isTask": true,
		"title": "t", "outcome": "o", "section": "today", "intensity": 3,
		"tags": "a,b", "dueDate": "2026-08-30T17:00:00Z", "estimatedTime": 45
	}`

	tests := []struct {
		name         string
		finishReason string
		doc          string
		want         float64
	}{
		{"stop with all fields", openai.FinishReasonStop, fullTask, 0.9},
		{"length with all fields", openai.FinishReasonLength, fullTask, 0.6},
		{"unknown finish reason", "content_filter", fullTask, 0.8},
		{
			"missing three fields",
			openai.FinishReasonStop,
			`{"isTask": true, "title": "t", "outcome": "o", "section": "today", "intensity": 3}`,
			0.9 * 4.0 / 7.0,
		},
		{
			"zero intensity counts as absent",
			openai.FinishReasonStop,
			`{"isTask": true, "title": "t", "outcome": "o", "section": "today", "intensity": 0,
			  "tags": "a", "dueDate": "2026-08-30T17:00:00Z", "estimatedTime": 45}`,
			0.9 * 6.0 / 7.0,
		},
		{
			"null field counts as absent",
			openai.FinishReasonStop,
			`{"isTask": true, "title": "t", "outcome": "o", "section": "today", "intensity": 3,
			  "tags": null, "dueDate": "2026-08-30T17:00:00Z", "estimatedTime": 45}`,
			0.9 * 6.0 / 7.0,
		},
		{"non-task skips field scaling", openai.FinishReasonStop, `{"isTask": false}`, 0.9},
		{"non-task truncated", openai.FinishReasonLength, `{"isTask": false}`, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeConfidence(tt.finishReason, gjson.Parse(tt.doc))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("computeConfidence() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("confidence %v out of [0,1]", got)
			}
		})
	}
}

func TestFieldPresent(t *testing.T) {
	doc := gjson.Parse(`{"s": "x", "empty": "", "n": 3, "zero": 0, "null": null}`)

	tests := []struct {
		path string
		want bool
	}{
		{"s", true},
		{"n", true},
		{"empty", false},
		{"zero", false},
		{"null", false},
		{"missing", false},
	}

	for _, tt := range tests {
		if got := fieldPresent(doc.Get(tt.path)); got != tt.want {
			t.Errorf("fieldPresent(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
