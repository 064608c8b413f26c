package summarize

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"

	apperrors "vidsum/internal/app/errors"
)

// OpenAISummarizer condenses text with the OpenAI chat-completion API.
type OpenAISummarizer struct {
	client *openai.Client
	model  string
}

// OpenAIOption customizes an OpenAISummarizer.
type OpenAIOption func(*openai.ClientConfig)

// WithOpenAIBaseURL overrides the API endpoint, mainly for tests.
func WithOpenAIBaseURL(baseURL string) OpenAIOption {
	return func(cfg *openai.ClientConfig) {
		cfg.BaseURL = baseURL
	}
}

// NewOpenAISummarizer creates an OpenAISummarizer from an explicit API
// key. The key is held only by the constructed client.
func NewOpenAISummarizer(apiKey string, opts ...OpenAIOption) (*OpenAISummarizer, error) {
	if apiKey == "" {
		return nil, apperrors.ErrMissingAPIKey
	}

	cfg := openai.DefaultConfig(apiKey)
	for _, opt := range opts {
		opt(&cfg)
	}

	return &OpenAISummarizer{
		client: openai.NewClientWithConfig(cfg),
		model:  openai.GPT3Dot5Turbo,
	}, nil
}

// Summarize sends the text with a fixed summarization instruction and
// returns the generated summary.
func (s *OpenAISummarizer) Summarize(ctx context.Context, text string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	request := openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPromptPrefix + text,
			},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", apperrors.Wrap(err, "createChatCompletion failed")
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.ErrEmptySummary
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", apperrors.ErrEmptySummary
	}
	return summary, nil
}
