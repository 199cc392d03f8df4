package model

// Section is the GTD-style bucket a task belongs to.
type Section string

const (
	SectionCanDoNow   Section = "can-do-now"
	SectionToday      Section = "today"
	SectionWaitingFor Section = "waiting-for"
	SectionRecurring  Section = "recurring"
	SectionSomeday    Section = "someday"
	SectionReference  Section = "reference"
)

// Sections lists every valid section value.
func Sections() []Section {
	return []Section{
		SectionCanDoNow,
		SectionToday,
		SectionWaitingFor,
		SectionRecurring,
		SectionSomeday,
		SectionReference,
	}
}

// Valid reports whether s is one of the six enumerated sections.
func (s Section) Valid() bool {
	for _, v := range Sections() {
		if s == v {
			return true
		}
	}
	return false
}

// Status is the lifecycle state of a persisted task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every valid status value.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}
}

// Valid reports whether st is one of the four enumerated statuses.
func (st Status) Valid() bool {
	for _, v := range Statuses() {
		if st == v {
			return true
		}
	}
	return false
}

// StructuredTask is the validated, persistable task record produced by the
// extraction pipeline. Date fields are RFC3339 strings on this side of the
// persistence boundary regardless of the store's native representation.
type StructuredTask struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Outcome string `json:"outcome"`
	Section Section `json:"section"`
	// Intensity is the subjective effort rating, 1 (trivial) to 10
	// (extremely demanding).
	Intensity     int     `json:"intensity"`
	Tags          string  `json:"tags"`
	DueDate       string  `json:"dueDate"`
	EstimatedTime float64 `json:"estimatedTime"` // minutes
	IsTask        bool    `json:"isTask"`

	// Processing audit trail. Every persisted record carries the
	// transcription it was extracted from.
	OriginalTranscription string  `json:"originalTranscription"`
	ProcessedAt           string  `json:"processedAt"`
	LLMModel              string  `json:"llmModel"`
	ProcessingConfidence  float64 `json:"processingConfidence"`

	Status  Status `json:"status"`
	UserID  string `json:"userId,omitempty"`
	Created string `json:"created,omitempty"`
	Updated string `json:"updated,omitempty"`
}
