package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vidsum/internal/api/v1/dto"
	"vidsum/internal/api/v1/services"
	"vidsum/internal/config"
)

type stubSummaryService struct{}

func (stubSummaryService) CreateFromUpload(context.Context, string, string, services.Credentials, dto.UploadOptions) (*dto.JobResponse, error) {
	return nil, nil
}
func (stubSummaryService) GetJob(context.Context, string) (*dto.JobResponse, error) { return nil, nil }
func (stubSummaryService) DeleteJob(context.Context, string) error                  { return nil }
func (stubSummaryService) SummarizeText(context.Context, services.Credentials, *dto.SummarizeTextRequest) (*dto.SummarizeTextResponse, error) {
	return nil, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.DefaultServerConfig()
	cfg.StaticDir = ""
	return NewServer(cfg, stubSummaryService{}, prometheus.NewRegistry(), zap.NewNop())
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
