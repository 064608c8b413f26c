package summarize

import (
	"context"
	"strings"

	"google.golang.org/genai"

	apperrors "vidsum/internal/app/errors"
)

// GeminiSummarizer condenses text with the Gemini generate-content API.
type GeminiSummarizer struct {
	apiKey string
	model  string
}

// NewGeminiSummarizer creates a GeminiSummarizer from an explicit API
// key.
func NewGeminiSummarizer(apiKey string) (*GeminiSummarizer, error) {
	if apiKey == "" {
		return nil, apperrors.ErrMissingAPIKey
	}
	return &GeminiSummarizer{
		apiKey: apiKey,
		model:  "gemini-2.0-flash",
	}, nil
}

// Summarize sends the text with the fixed summarization instruction and
// returns the generated summary. The genai client is created per call;
// it carries no reusable connection state worth caching for a
// one-request-per-run pipeline.
func (s *GeminiSummarizer) Summarize(ctx context.Context, text string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", apperrors.Wrap(err, "create gemini client")
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens:   int32(maxTokens),
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(userPromptPrefix+text), config)
	if err != nil {
		return "", apperrors.Wrap(err, "generateContent failed")
	}

	summary := strings.TrimSpace(result.Text())
	if summary == "" {
		return "", apperrors.ErrEmptySummary
	}
	return summary, nil
}
