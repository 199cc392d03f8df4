package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"life-manager/internal/model"
	"life-manager/internal/task"
	"life-manager/internal/task/schema"
	"life-manager/pkg/gcalendar"
)

// Process validates the input, runs the extraction pipeline and persists the
// resulting task when one is found. A persistence failure does not discard
// the extraction work: it is reported alongside the extracted task.
func (uc *implUseCase) Process(ctx context.Context, input task.ProcessInput) (task.ProcessOutput, error) {
	in := model.TranscriptionInput{
		Transcription: input.Transcription,
		Metadata:      input.Metadata,
	}
	if err := schema.ValidateInput(in); err != nil {
		return task.ProcessOutput{}, err
	}

	source := "unknown"
	if input.Metadata != nil && input.Metadata.Source != "" {
		source = string(input.Metadata.Source)
	}
	uc.l.Infof(ctx, "Process: transcription_length=%d source=%s", len(input.Transcription), source)

	result := uc.extract(ctx, input.Transcription, input.Metadata)
	if !result.Success || !result.IsTask {
		return task.ProcessOutput{Result: result}, nil
	}

	out := task.ProcessOutput{Result: result}

	saved, err := uc.repo.Save(ctx, *result.Task)
	if err != nil {
		uc.l.Warnf(ctx, "Process: task extracted but failed to save: %v", err)
		out.SaveError = err.Error()
		return out, nil
	}

	out.Saved = true
	out.TaskID = saved.ID
	uc.l.Infof(ctx, "Process: task %q saved with id=%s", saved.Title, saved.ID)

	uc.tryScheduleCalendarEvent(ctx, saved)

	return out, nil
}

// tryScheduleCalendarEvent creates a calendar event for a saved task's due
// date. Failures are logged and otherwise ignored.
func (uc *implUseCase) tryScheduleCalendarEvent(ctx context.Context, t model.StructuredTask) {
	if uc.calendar == nil || t.DueDate == "" {
		return
	}

	startTime, err := time.Parse(time.RFC3339, t.DueDate)
	if err != nil {
		return
	}

	duration := time.Duration(t.EstimatedTime) * time.Minute
	if duration <= 0 {
		duration = time.Hour
	}

	description := t.Outcome
	if t.OriginalTranscription != "" {
		description += fmt.Sprintf("\n\nCaptured from: %s", t.OriginalTranscription)
	}

	_, err = uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: strings.TrimSpace(description),
		StartTime:   startTime,
		EndTime:     startTime.Add(duration),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Process: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
	}
}
