// Package schema defines and enforces the accepted shapes for transcription
// input and structured task output. Checks are pure and enumerate every
// violated field rather than stopping at the first.
package schema

import (
	"fmt"
	"strings"
	"time"

	"life-manager/internal/model"
)

// FieldError is one violated constraint. Field is a dotted path into the
// validated document (e.g. "metadata.source").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of violated fields.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidateInput checks a transcription input against the accepted shape.
// Returns nil or a *ValidationError listing every violation.
func ValidateInput(in model.TranscriptionInput) error {
	var fields []FieldError

	if strings.TrimSpace(in.Transcription) == "" {
		fields = append(fields, FieldError{Field: "transcription", Message: "transcription cannot be empty"})
	} else if len(in.Transcription) > model.MaxTranscriptionLength {
		fields = append(fields, FieldError{Field: "transcription", Message: "transcription too long"})
	}

	if in.Metadata != nil {
		if in.Metadata.Timestamp != "" {
			if _, err := time.Parse(time.RFC3339, in.Metadata.Timestamp); err != nil {
				fields = append(fields, FieldError{Field: "metadata.timestamp", Message: "must be an ISO-8601 datetime"})
			}
		}
		if in.Metadata.Source != "" && !in.Metadata.Source.Valid() {
			fields = append(fields, FieldError{Field: "metadata.source", Message: "must be one of: voice, text, other"})
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateExtracted checks the task fields an LLM reply must provide before
// the record is enriched with processing metadata.
func ValidateExtracted(t model.StructuredTask) error {
	fields := extractedFieldErrors(t)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateTaskOutput checks a fully enriched task against the persistable
// shape. The persistence adapter re-runs this before every write so the
// store never receives a record the schema rejects.
func ValidateTaskOutput(t model.StructuredTask) error {
	fields := extractedFieldErrors(t)

	if t.OriginalTranscription == "" {
		fields = append(fields, FieldError{Field: "originalTranscription", Message: "original transcription is required"})
	}
	if _, err := time.Parse(time.RFC3339, t.ProcessedAt); err != nil {
		fields = append(fields, FieldError{Field: "processedAt", Message: "must be an ISO-8601 datetime"})
	}
	if t.LLMModel == "" {
		fields = append(fields, FieldError{Field: "llmModel", Message: "model identifier is required"})
	}
	if t.ProcessingConfidence < 0 || t.ProcessingConfidence > 1 {
		fields = append(fields, FieldError{Field: "processingConfidence", Message: "must be between 0 and 1"})
	}
	if t.Status != "" && !t.Status.Valid() {
		fields = append(fields, FieldError{Field: "status", Message: "must be one of: pending, in_progress, completed, cancelled"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func extractedFieldErrors(t model.StructuredTask) []FieldError {
	var fields []FieldError

	if t.Title == "" {
		fields = append(fields, FieldError{Field: "title", Message: "task title is required"})
	} else if len(t.Title) > 200 {
		fields = append(fields, FieldError{Field: "title", Message: "must be at most 200 characters"})
	}

	if t.Outcome == "" {
		fields = append(fields, FieldError{Field: "outcome", Message: "outcome is required"})
	} else if len(t.Outcome) > 500 {
		fields = append(fields, FieldError{Field: "outcome", Message: "must be at most 500 characters"})
	}

	if !t.Section.Valid() {
		fields = append(fields, FieldError{Field: "section", Message: "must be one of: can-do-now, today, waiting-for, recurring, someday, reference"})
	}

	if t.Intensity < 1 || t.Intensity > 10 {
		fields = append(fields, FieldError{Field: "intensity", Message: "must be between 1 and 10"})
	}

	if len(t.Tags) > 200 {
		fields = append(fields, FieldError{Field: "tags", Message: "must be at most 200 characters"})
	}

	if _, err := time.Parse(time.RFC3339, t.DueDate); err != nil {
		fields = append(fields, FieldError{Field: "dueDate", Message: "must be an ISO-8601 datetime"})
	}

	if t.EstimatedTime <= 0 {
		fields = append(fields, FieldError{Field: "estimatedTime", Message: "must be a positive number of minutes"})
	}

	return fields
}
