package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	apperrors "vidsum/internal/app/errors"
)

const defaultAssemblyAIBaseURL = "https://api.assemblyai.com/v2"

// AssemblyAITranscriber implements remote transcription against the
// AssemblyAI REST API: upload the file, create a transcript job, then
// poll until it finishes.
type AssemblyAITranscriber struct {
	apiKey       string
	baseURL      string
	client       *http.Client
	pollInterval time.Duration
}

// AssemblyAIOption customizes an AssemblyAITranscriber.
type AssemblyAIOption func(*AssemblyAITranscriber)

// WithAssemblyAIBaseURL overrides the API endpoint, mainly for tests.
func WithAssemblyAIBaseURL(baseURL string) AssemblyAIOption {
	return func(t *AssemblyAITranscriber) {
		t.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithAssemblyAIPollInterval overrides the transcript polling interval.
func WithAssemblyAIPollInterval(interval time.Duration) AssemblyAIOption {
	return func(t *AssemblyAITranscriber) {
		t.pollInterval = interval
	}
}

// WithAssemblyAIHTTPClient overrides the HTTP client.
func WithAssemblyAIHTTPClient(client *http.Client) AssemblyAIOption {
	return func(t *AssemblyAITranscriber) {
		t.client = client
	}
}

// NewAssemblyAITranscriber creates an AssemblyAITranscriber from an
// explicit API key.
func NewAssemblyAITranscriber(apiKey string, opts ...AssemblyAIOption) (*AssemblyAITranscriber, error) {
	if apiKey == "" {
		return nil, apperrors.ErrMissingAPIKey
	}

	t := &AssemblyAITranscriber{
		apiKey:       apiKey,
		baseURL:      defaultAssemblyAIBaseURL,
		client:       &http.Client{Timeout: 5 * time.Minute},
		pollInterval: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}

type transcriptResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Error  string `json:"error"`
}

// Transcribe uploads the media file and polls the transcript job until
// it completes. A single job is attempted; any service failure is
// surfaced as-is.
func (t *AssemblyAITranscriber) Transcribe(ctx context.Context, mediaPath string) (string, error) {
	uploadURL, err := t.upload(ctx, mediaPath)
	if err != nil {
		return "", err
	}

	transcriptID, err := t.createTranscript(ctx, uploadURL)
	if err != nil {
		return "", err
	}

	return t.waitForTranscript(ctx, transcriptID)
}

func (t *AssemblyAITranscriber) upload(ctx context.Context, mediaPath string) (string, error) {
	file, err := os.Open(mediaPath)
	if err != nil {
		return "", apperrors.Wrapf(err, "open media file %s", mediaPath)
	}
	defer file.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/upload", file)
	if err != nil {
		return "", apperrors.Wrap(err, "build upload request")
	}
	req.Header.Set("Authorization", t.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	var resp uploadResponse
	if err := t.do(req, &resp); err != nil {
		return "", apperrors.Wrap(err, "upload media")
	}
	if resp.UploadURL == "" {
		return "", apperrors.New("upload response missing upload_url")
	}
	return resp.UploadURL, nil
}

func (t *AssemblyAITranscriber) createTranscript(ctx context.Context, audioURL string) (string, error) {
	body, err := json.Marshal(map[string]string{"audio_url": audioURL})
	if err != nil {
		return "", apperrors.Wrap(err, "marshal transcript request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/transcript", bytes.NewReader(body))
	if err != nil {
		return "", apperrors.Wrap(err, "build transcript request")
	}
	req.Header.Set("Authorization", t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var resp transcriptResponse
	if err := t.do(req, &resp); err != nil {
		return "", apperrors.Wrap(err, "create transcript")
	}
	if resp.ID == "" {
		return "", apperrors.New("transcript response missing id")
	}
	return resp.ID, nil
}

func (t *AssemblyAITranscriber) waitForTranscript(ctx context.Context, transcriptID string) (string, error) {
	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/transcript/"+transcriptID, nil)
		if err != nil {
			return "", apperrors.Wrap(err, "build transcript poll request")
		}
		req.Header.Set("Authorization", t.apiKey)

		var resp transcriptResponse
		if err := t.do(req, &resp); err != nil {
			return "", apperrors.Wrap(err, "poll transcript")
		}

		switch resp.Status {
		case "completed":
			text := strings.TrimSpace(resp.Text)
			if text == "" {
				return "", apperrors.ErrEmptyTranscript
			}
			return text, nil
		case "error":
			return "", apperrors.Newf("transcription failed: %s", resp.Error)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

func (t *AssemblyAITranscriber) do(req *http.Request, out interface{}) error {
	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return json.Unmarshal(data, out)
}
