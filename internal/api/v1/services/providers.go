package services

import (
	"vidsum/internal/api/errors"
	"vidsum/internal/app/summarize"
	"vidsum/internal/app/transcribe"
)

// ProviderFactory builds the external-service clients for one run.
// Swappable so tests can substitute fakes.
type ProviderFactory struct {
	NewTranscriber func(provider string, creds Credentials) (transcribe.Transcriber, error)
	NewSummarizer  func(provider string, creds Credentials) (summarize.Summarizer, error)
}

// DefaultProviderFactory wires the real API clients.
func DefaultProviderFactory() ProviderFactory {
	return ProviderFactory{
		NewTranscriber: newTranscriber,
		NewSummarizer:  newSummarizer,
	}
}

func newTranscriber(provider string, creds Credentials) (transcribe.Transcriber, error) {
	switch provider {
	case "", transcribe.ProviderAssemblyAI:
		if creds.AssemblyAI == "" {
			return nil, errors.NewValidationError("Missing credentials", map[string]string{
				"assemblyai_key": "provide X-AssemblyAI-Key or set ASSEMBLYAI_API_KEY",
			})
		}
		return transcribe.NewAssemblyAITranscriber(creds.AssemblyAI)
	case transcribe.ProviderWhisper:
		if creds.OpenAI == "" {
			return nil, errors.NewValidationError("Missing credentials", map[string]string{
				"openai_key": "provide X-OpenAI-Key or set OPENAI_API_KEY",
			})
		}
		return transcribe.NewWhisperTranscriber(creds.OpenAI)
	default:
		return nil, errors.NewValidationError("Invalid provider", map[string]string{
			"transcriber": "unknown transcriber: " + provider,
		})
	}
}

func newSummarizer(provider string, creds Credentials) (summarize.Summarizer, error) {
	switch provider {
	case "", summarize.ProviderOpenAI:
		if creds.OpenAI == "" {
			return nil, errors.NewValidationError("Missing credentials", map[string]string{
				"openai_key": "provide X-OpenAI-Key or set OPENAI_API_KEY",
			})
		}
		return summarize.NewOpenAISummarizer(creds.OpenAI)
	case summarize.ProviderGemini:
		if creds.Gemini == "" {
			return nil, errors.NewValidationError("Missing credentials", map[string]string{
				"gemini_key": "provide X-Gemini-Key or set GEMINI_API_KEY",
			})
		}
		return summarize.NewGeminiSummarizer(creds.Gemini)
	default:
		return nil, errors.NewValidationError("Invalid provider", map[string]string{
			"summarizer": "unknown summarizer: " + provider,
		})
	}
}
