// Package llm is the provider boundary for optional model-assisted steps:
// suggesting a priority hint for the scoring engine and free-form quality
// feedback. The scoring engine itself never calls into this package.
package llm

import "context"

// Provider represents an LLM provider
type Provider string

const (
	ProviderOllama    Provider = "ollama"
	ProviderAnthropic Provider = "anthropic"
)

// Request represents an LLM completion request
type Request struct {
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
	JSONMode    bool // Force JSON output (supported by Ollama)
}

// Message represents a chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response represents an LLM completion response
type Response struct {
	Content      string
	Model        string
	Provider     Provider
	InputTokens  int
	OutputTokens int
	FinishReason string
}

// Client is the interface for LLM providers
type Client interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	Name() Provider
	Available() bool
}
