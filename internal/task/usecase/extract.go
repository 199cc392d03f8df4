package usecase

import (
	"context"
	"time"

	"github.com/tidwall/gjson"

	"life-manager/internal/model"
	"life-manager/internal/task"
	"life-manager/internal/task/schema"
	"life-manager/pkg/openai"
)

const (
	extractionTemperature = 0.7
	extractionMaxTokens   = 2000

	messageTaskCreated    = "Task created successfully!"
	messageNotATask       = "The transcription doesn't appear to contain a task."
	messageProcessFailure = "Failed to process the transcription."
)

// extract runs one transcription through the LLM and turns the reply into a
// trustworthy record. It issues exactly one upstream call and never raises
// past its boundary: every failure mode becomes a Success=false result.
func (uc *implUseCase) extract(ctx context.Context, transcription string, metadata *model.TranscriptionMetadata) task.ExtractionResult {
	start := time.Now()

	fail := func(err error) task.ExtractionResult {
		uc.l.Errorf(ctx, "extract: %v", err)
		return task.ExtractionResult{
			Success:          false,
			IsTask:           false,
			Error:            err.Error(),
			Message:          messageProcessFailure,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		}
	}

	resp, err := uc.llm.ChatCompletion(ctx, &openai.Request{
		Messages: []openai.Message{
			{Role: "system", Content: extractionSystemPrompt},
			{Role: "user", Content: buildUserPrompt(transcription, metadata)},
		},
		Temperature: extractionTemperature,
		MaxTokens:   extractionMaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		result := fail(err)
		result.Upstream = true
		return result
	}

	// Strip markdown fences some models add despite JSON mode, then treat
	// any remaining parse failure as terminal for this call.
	raw := sanitizeJSONResponse(resp.Content)
	if !gjson.Valid(raw) {
		return fail(errParseLLMResponse)
	}
	doc := gjson.Parse(raw)

	if !doc.Get("isTask").Bool() {
		return task.ExtractionResult{
			Success:          true,
			IsTask:           false,
			Message:          messageNotATask,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		}
	}

	// Strict parse-then-validate boundary: build the candidate from the
	// untyped document and validate before anything flows further.
	candidate := taskFromDoc(doc)
	if err := schema.ValidateExtracted(candidate); err != nil {
		return fail(err)
	}

	candidate.IsTask = true
	candidate.OriginalTranscription = transcription
	candidate.ProcessedAt = time.Now().UTC().Format(time.RFC3339)
	candidate.LLMModel = uc.llm.Model()
	candidate.ProcessingConfidence = computeConfidence(resp.FinishReason, doc)
	candidate.Status = model.StatusPending
	if metadata != nil {
		candidate.UserID = metadata.UserID
	}

	if err := schema.ValidateTaskOutput(candidate); err != nil {
		return fail(err)
	}

	return task.ExtractionResult{
		Success:          true,
		IsTask:           true,
		Task:             &candidate,
		Message:          messageTaskCreated,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
}

// taskFromDoc constructs the typed candidate from the validated-later
// untyped document. Type mismatches surface as zero values, which the
// schema check then reports field by field.
func taskFromDoc(doc gjson.Result) model.StructuredTask {
	return model.StructuredTask{
		Title:         doc.Get("title").String(),
		Outcome:       doc.Get("outcome").String(),
		Section:       model.Section(doc.Get("section").String()),
		Intensity:     int(doc.Get("intensity").Int()),
		Tags:          doc.Get("tags").String(),
		DueDate:       doc.Get("dueDate").String(),
		EstimatedTime: doc.Get("estimatedTime").Float(),
	}
}
