package handlers

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"vidsum/internal/api/errors"
	"vidsum/internal/api/middleware"
	"vidsum/internal/api/v1/dto"
	"vidsum/internal/api/v1/services"
	"vidsum/internal/app/jobs"
	"vidsum/internal/app/util/files"
)

// SummaryHandler handles video summary API endpoints.
type SummaryHandler struct {
	service        services.SummaryService
	maxUploadBytes int64
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(service services.SummaryService, maxUploadBytes int64) *SummaryHandler {
	return &SummaryHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload handles POST /api/v1/summaries.
// Accepts a multipart video upload and starts an async pipeline run.
func (h *SummaryHandler) Upload(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if stderrors.As(err, &maxBytesErr) {
			middleware.HandleError(c, errors.NewValidationError("Upload too large", map[string]string{
				"file": fmt.Sprintf("must be at most %d bytes", maxBytesErr.Limit),
			}))
			return
		}
		middleware.HandleError(c, errors.NewBadRequestError("No file uploaded"))
		return
	}
	defer file.Close()

	if !files.IsAcceptedVideo(header.Filename) {
		middleware.HandleError(c, errors.NewValidationError("Unsupported file type", map[string]string{
			"file": "accepted extensions: " + strings.Join(files.AcceptedExtensions, ", "),
		}))
		return
	}

	opts := dto.UploadOptions{
		Transcriber: c.PostForm("transcriber"),
		Summarizer:  c.PostForm("summarizer"),
	}
	if !opts.ValidTranscriber() || !opts.ValidSummarizer() {
		middleware.HandleError(c, errors.NewValidationError("Invalid provider selection", map[string]string{
			"transcriber": "one of: assemblyai, whisper",
			"summarizer":  "one of: openai, gemini",
		}))
		return
	}

	if raw := c.PostForm("max_tokens"); raw != "" {
		maxTokens, err := strconv.Atoi(raw)
		if err != nil || maxTokens < 1 || maxTokens > 4096 {
			middleware.HandleError(c, errors.NewValidationError("Invalid max_tokens", map[string]string{
				"max_tokens": "must be an integer between 1 and 4096",
			}))
			return
		}
		opts.MaxTokens = maxTokens
	}

	// Save the upload with its original extension so the pipeline's
	// normalization check sees it.
	uploadPath, err := saveUpload(file, header.Filename)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to store upload"))
		return
	}

	response, err := h.service.CreateFromUpload(
		c.Request.Context(),
		uploadPath,
		header.Filename,
		credentialsFromHeaders(c),
		opts,
	)
	if err != nil {
		os.Remove(uploadPath)
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// Get handles GET /api/v1/summaries/:id.
func (h *SummaryHandler) Get(c *gin.Context) {
	response, err := h.service.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/v1/summaries/:id.
func (h *SummaryHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadTranscript handles GET /api/v1/summaries/:id/transcript.
// Streams the transcript as a plain-text attachment.
func (h *SummaryHandler) DownloadTranscript(c *gin.Context) {
	h.downloadArtifact(c, "transcript.txt", func(job *dto.JobResponse) string {
		return job.Transcript
	})
}

// DownloadSummary handles GET /api/v1/summaries/:id/summary.
// Streams the summary as a plain-text attachment.
func (h *SummaryHandler) DownloadSummary(c *gin.Context) {
	h.downloadArtifact(c, "summary.txt", func(job *dto.JobResponse) string {
		return job.Summary
	})
}

// SummarizeText handles POST /api/v1/summaries/text.
func (h *SummaryHandler) SummarizeText(c *gin.Context) {
	var req dto.SummarizeTextRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.SummarizeText(c.Request.Context(), credentialsFromHeaders(c), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SummaryHandler) downloadArtifact(c *gin.Context, fileName string, pick func(*dto.JobResponse) string) {
	job, err := h.service.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	if job.Status != string(jobs.StatusCompleted) {
		middleware.HandleError(c, &errors.APIError{
			Kind:    errors.KindConflict,
			Message: "Job is not completed",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(pick(job)))
}

// credentialsFromHeaders extracts per-request API keys. Keys stay in
// this request's processing chain only.
func credentialsFromHeaders(c *gin.Context) services.Credentials {
	return services.Credentials{
		OpenAI:     c.GetHeader("X-OpenAI-Key"),
		AssemblyAI: c.GetHeader("X-AssemblyAI-Key"),
		Gemini:     c.GetHeader("X-Gemini-Key"),
	}
}

// saveUpload copies the multipart file into a temp file carrying the
// original extension, case included, and returns its path.
func saveUpload(file io.Reader, originalName string) (string, error) {
	path, err := files.TempFileWithExt(strings.TrimPrefix(filepath.Ext(originalName), "."))
	if err != nil {
		return "", err
	}

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		os.Remove(path)
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
