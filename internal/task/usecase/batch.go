package usecase

import (
	"context"
	"time"

	"life-manager/internal/model"
	"life-manager/internal/task"
	"life-manager/internal/task/schema"
)

// BatchProcess runs the full pipeline over each transcription sequentially.
// Items are processed one at a time so upstream model load stays bounded;
// each item's outcome lands in an explicit result accumulator and never
// affects its neighbours.
func (uc *implUseCase) BatchProcess(ctx context.Context, input task.BatchInput) (task.BatchOutput, error) {
	if len(input.Inputs) == 0 {
		return task.BatchOutput{}, task.ErrEmptyBatch
	}
	if len(input.Inputs) > task.MaxBatchSize {
		return task.BatchOutput{}, task.ErrBatchTooLarge
	}

	start := time.Now()
	results := make([]task.BatchItemResult, 0, len(input.Inputs))

	for i, item := range input.Inputs {
		results = append(results, uc.processBatchItem(ctx, i, item))
	}

	successful := 0
	for _, r := range results {
		if r.Success && r.IsTask {
			successful++
		}
	}

	return task.BatchOutput{
		Results: results,
		Summary: task.BatchSummary{
			Total:                 len(input.Inputs),
			Successful:            successful,
			Failed:                len(input.Inputs) - successful,
			TotalProcessingTimeMs: time.Since(start).Milliseconds(),
		},
	}, nil
}

func (uc *implUseCase) processBatchItem(ctx context.Context, idx int, item task.ProcessInput) task.BatchItemResult {
	in := model.TranscriptionInput{
		Transcription: item.Transcription,
		Metadata:      item.Metadata,
	}
	if err := schema.ValidateInput(in); err != nil {
		uc.l.Warnf(ctx, "BatchProcess: item %d rejected: %v", idx, err)
		return task.BatchItemResult{
			Success:               false,
			IsTask:                false,
			Error:                 err.Error(),
			OriginalTranscription: item.Transcription,
		}
	}

	result := uc.extract(ctx, item.Transcription, item.Metadata)
	if !result.Success || !result.IsTask {
		return task.BatchItemResult{
			Success:               result.Success,
			IsTask:                result.IsTask,
			Message:               result.Message,
			Error:                 result.Error,
			OriginalTranscription: item.Transcription,
		}
	}

	itemResult := task.BatchItemResult{
		Success:               true,
		IsTask:                true,
		Task:                  result.Task,
		OriginalTranscription: item.Transcription,
	}

	saved, err := uc.repo.Save(ctx, *result.Task)
	if err != nil {
		uc.l.Warnf(ctx, "BatchProcess: item %d extracted but failed to save: %v", idx, err)
		return itemResult
	}

	itemResult.Saved = true
	itemResult.TaskID = saved.ID
	return itemResult
}
