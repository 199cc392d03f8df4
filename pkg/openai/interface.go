package openai

import "context"

// IOpenAI defines the interface for the OpenAI chat-completions client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// ChatCompletion sends a chat-completion request to the OpenAI API
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new OpenAI client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
