package transcribe

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"

	apperrors "vidsum/internal/app/errors"
)

// WhisperTranscriber implements remote transcription using the OpenAI
// Whisper API.
type WhisperTranscriber struct {
	client *openai.Client
}

// NewWhisperTranscriber creates a WhisperTranscriber from an explicit
// API key. The key is held only by the constructed client.
func NewWhisperTranscriber(apiKey string) (*WhisperTranscriber, error) {
	if apiKey == "" {
		return nil, apperrors.ErrMissingAPIKey
	}
	return &WhisperTranscriber{client: openai.NewClient(apiKey)}, nil
}

// Transcribe uploads the media file to the Whisper API and returns the
// transcript text.
func (t *WhisperTranscriber) Transcribe(ctx context.Context, mediaPath string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: mediaPath,
	}
	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", apperrors.Wrap(err, "createTranscription failed")
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", apperrors.ErrEmptyTranscript
	}
	return text, nil
}
