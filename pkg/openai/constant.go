package openai

import "time"

const (
	// DefaultModel is the default chat-completions model
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Finish reasons reported by the chat-completions API.
const (
	FinishReasonStop   = "stop"
	FinishReasonLength = "length"
)
