package http

import (
	"life-manager/internal/model"
	"life-manager/internal/task"
)

// --- Request DTOs ---

type metadataReq struct {
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	UserID    string `json:"userId"`
}

// processReq carries one transcription. Constraint checking is deliberately
// left to the schema layer so every violated field is enumerated, not just
// the first one a binding tag trips on.
type processReq struct {
	Transcription string       `json:"transcription"`
	Metadata      *metadataReq `json:"metadata"`
}

func (r processReq) toInput() task.ProcessInput {
	in := task.ProcessInput{Transcription: r.Transcription}
	if r.Metadata != nil {
		in.Metadata = &model.TranscriptionMetadata{
			Timestamp: r.Metadata.Timestamp,
			Source:    model.TranscriptionSource(r.Metadata.Source),
			UserID:    r.Metadata.UserID,
		}
	}
	return in
}

// ---

type listReq struct {
	Status    string `form:"status"`
	Section   string `form:"section"`
	Category  string `form:"category"` // legacy alias for section
	Intensity int    `form:"intensity"`
	Priority  int    `form:"priority"` // legacy alias for intensity
	UserID    string `form:"userId"`
	Page      int    `form:"page"`
	PerPage   int    `form:"perPage"`
}

func (r listReq) toInput() task.ListInput {
	section := r.Section
	if section == "" {
		section = r.Category
	}
	intensity := r.Intensity
	if intensity == 0 {
		intensity = r.Priority
	}

	page := r.Page
	if page <= 0 {
		page = 1
	}
	perPage := r.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 20
	}

	return task.ListInput{
		Status:    r.Status,
		Section:   section,
		Intensity: intensity,
		UserID:    r.UserID,
		Page:      page,
		PerPage:   perPage,
	}
}

// ---

type statusReq struct {
	Status string `json:"status"`
}

type batchReq struct {
	Transcriptions []processReq `json:"transcriptions"`
}

func (r batchReq) toInput() task.BatchInput {
	inputs := make([]task.ProcessInput, len(r.Transcriptions))
	for i, t := range r.Transcriptions {
		inputs[i] = t.toInput()
	}
	return task.BatchInput{Inputs: inputs}
}

// --- Response DTOs ---

type processResp struct {
	Success        bool                  `json:"success"`
	IsTask         bool                  `json:"isTask"`
	Message        string                `json:"message,omitempty"`
	Error          string                `json:"error,omitempty"`
	Task           *model.StructuredTask `json:"task,omitempty"`
	ProcessingTime int64                 `json:"processingTime"`
	Saved          *bool                 `json:"saved,omitempty"`
	TaskID         string                `json:"taskId,omitempty"`
	SaveError      string                `json:"saveError,omitempty"`
}

func newProcessResp(out task.ProcessOutput) processResp {
	resp := processResp{
		Success:        out.Result.Success,
		IsTask:         out.Result.IsTask,
		Message:        out.Result.Message,
		Error:          out.Result.Error,
		Task:           out.Result.Task,
		ProcessingTime: out.Result.ProcessingTimeMs,
	}

	if out.Result.Success && out.Result.IsTask {
		saved := out.Saved
		resp.Saved = &saved
		resp.TaskID = out.TaskID
		resp.SaveError = out.SaveError
		if !out.Saved {
			resp.Message = "Task created but failed to save to database"
		}
	}

	return resp
}

type listResp struct {
	Success    bool                   `json:"success"`
	Tasks      []model.StructuredTask `json:"tasks"`
	Page       int                    `json:"page"`
	PerPage    int                    `json:"perPage"`
	TotalItems int                    `json:"totalItems"`
	TotalPages int                    `json:"totalPages"`
}

func newListResp(out task.ListOutput) listResp {
	return listResp{
		Success:    true,
		Tasks:      out.Tasks,
		Page:       out.Page,
		PerPage:    out.PerPage,
		TotalItems: out.TotalItems,
		TotalPages: out.TotalPages,
	}
}

type detailResp struct {
	Success bool                 `json:"success"`
	Task    model.StructuredTask `json:"task"`
}

type batchItemResp struct {
	Success               bool                  `json:"success"`
	IsTask                bool                  `json:"isTask"`
	Task                  *model.StructuredTask `json:"task,omitempty"`
	Saved                 *bool                 `json:"saved,omitempty"`
	TaskID                string                `json:"taskId,omitempty"`
	Message               string                `json:"message,omitempty"`
	Error                 string                `json:"error,omitempty"`
	OriginalTranscription string                `json:"originalTranscription"`
}

type batchSummaryResp struct {
	Total               int   `json:"total"`
	Successful          int   `json:"successful"`
	Failed              int   `json:"failed"`
	TotalProcessingTime int64 `json:"totalProcessingTime"`
}

type batchResp struct {
	Success bool             `json:"success"`
	Results []batchItemResp  `json:"results"`
	Summary batchSummaryResp `json:"summary"`
}

func newBatchResp(out task.BatchOutput) batchResp {
	results := make([]batchItemResp, len(out.Results))
	for i, r := range out.Results {
		item := batchItemResp{
			Success:               r.Success,
			IsTask:                r.IsTask,
			Task:                  r.Task,
			TaskID:                r.TaskID,
			Message:               r.Message,
			Error:                 r.Error,
			OriginalTranscription: r.OriginalTranscription,
		}
		if r.Success && r.IsTask {
			saved := r.Saved
			item.Saved = &saved
		}
		results[i] = item
	}

	return batchResp{
		Success: true,
		Results: results,
		Summary: batchSummaryResp{
			Total:               out.Summary.Total,
			Successful:          out.Summary.Successful,
			Failed:              out.Summary.Failed,
			TotalProcessingTime: out.Summary.TotalProcessingTimeMs,
		},
	}
}
