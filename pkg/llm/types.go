package llm

import "context"

// Message is one turn of the conversation forwarded to the completion API.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Stream yields incremental content fragments of one completion.
// Recv returns io.EOF when the completion is finished.
type Stream interface {
	Recv() (string, error)
	Close() error
}

// Client defines the interface for streaming LLM interactions.
type Client interface {
	StreamCompletion(ctx context.Context, systemPrompt string, messages []Message) (Stream, error)
	GetModelInfo() ModelInfo
}

// ModelInfo contains information about the LLM model.
type ModelInfo struct {
	Name                string
	Provider            string
	MaxCompletionTokens int
}

// Config holds configuration for LLM clients.
type Config struct {
	Provider            string
	Model               string
	APIKey              string
	BaseURL             string // OpenAI-compatible gateway URL, empty for the provider default
	MaxCompletionTokens int
	Temperature         float64
}
