// Package summarize holds the text condensation clients. Each provider
// takes transcript text and returns a short generated summary.
package summarize

import "context"

// DefaultMaxTokens is the token budget for a summary when the caller
// does not specify one.
const DefaultMaxTokens = 150

// Summarizer condenses text via an external generative-language
// service. Implementations make a single attempt per call.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxTokens int) (string, error)
}

// Provider identifiers selectable per request.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

const (
	systemPrompt     = "You are a helpful assistant that creates concise summaries."
	userPromptPrefix = "Please summarize the following text:\n\n"
)
