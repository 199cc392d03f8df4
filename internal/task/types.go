package task

import "life-manager/internal/model"

// ProcessInput is one transcription submitted to the extraction pipeline.
type ProcessInput struct {
	Transcription string
	Metadata      *model.TranscriptionMetadata
}

// ExtractionResult is the outcome of one extraction call. The extraction
// service always returns a result object; internal failures are reported
// through Success=false rather than raised.
type ExtractionResult struct {
	Success          bool
	IsTask           bool
	Task             *model.StructuredTask
	Message          string
	Error            string
	ProcessingTimeMs int64
	// Upstream marks failures of the model call itself (network, API,
	// timeout) as opposed to rejected model output.
	Upstream bool
}

// ProcessOutput is the result of running the full pipeline (extraction plus
// persistence) on a single transcription. Extraction success and persistence
// success are independently observable.
type ProcessOutput struct {
	Result    ExtractionResult
	Saved     bool
	TaskID    string
	SaveError string
}

// ListInput holds the filters and pagination for a task listing.
type ListInput struct {
	Status    string
	Section   string
	Intensity int
	UserID    string
	Page      int
	PerPage   int
}

// ListOutput is a page of tasks.
type ListOutput struct {
	Tasks      []model.StructuredTask
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
}

// BatchInput is the input for batch processing.
type BatchInput struct {
	Inputs []ProcessInput
}

// BatchItemResult is the tagged per-item outcome of a batch run. One bad
// item never aborts the batch; its failure is recorded here instead.
type BatchItemResult struct {
	Success               bool
	IsTask                bool
	Task                  *model.StructuredTask
	Saved                 bool
	TaskID                string
	Message               string
	Error                 string
	OriginalTranscription string
}

// BatchSummary tallies a batch run. Successful+Failed == Total.
type BatchSummary struct {
	Total                 int
	Successful            int
	Failed                int
	TotalProcessingTimeMs int64
}

// BatchOutput is the result of batch processing.
type BatchOutput struct {
	Results []BatchItemResult
	Summary BatchSummary
}

// MaxBatchSize caps the number of transcriptions per batch so batch latency
// and upstream model load stay bounded.
const MaxBatchSize = 10
