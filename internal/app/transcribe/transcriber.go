// Package transcribe holds the speech-to-text clients. Each provider
// takes a local media file path and returns the full transcript text.
package transcribe

import "context"

// Transcriber converts audio/video content to text via an external
// recognition service. Implementations make a single attempt per call;
// retries are the caller's decision.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) (string, error)
}

// Provider identifiers selectable per request.
const (
	ProviderAssemblyAI = "assemblyai"
	ProviderWhisper    = "whisper"
)
