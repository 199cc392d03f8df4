package model

// TranscriptionSource identifies how a transcription was captured.
type TranscriptionSource string

const (
	SourceVoice TranscriptionSource = "voice"
	SourceText  TranscriptionSource = "text"
	SourceOther TranscriptionSource = "other"
)

// Valid reports whether s is a known capture source.
func (s TranscriptionSource) Valid() bool {
	return s == SourceVoice || s == SourceText || s == SourceOther
}

// TranscriptionMetadata is the optional context attached to a transcription.
type TranscriptionMetadata struct {
	Timestamp string              `json:"timestamp,omitempty"` // RFC3339
	Source    TranscriptionSource `json:"source,omitempty"`
	UserID    string              `json:"userId,omitempty"`
}

// TranscriptionInput is one unit of raw captured text submitted for
// extraction. Constructed once per request and never mutated.
type TranscriptionInput struct {
	Transcription string                 `json:"transcription"`
	Metadata      *TranscriptionMetadata `json:"metadata,omitempty"`
}

// MaxTranscriptionLength bounds the accepted transcription size.
const MaxTranscriptionLength = 5000
