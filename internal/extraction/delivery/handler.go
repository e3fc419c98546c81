package delivery

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"docflow-backend/internal/domain"
	"docflow-backend/internal/extraction/usecase"

	"github.com/gin-gonic/gin"
)

// ProcessHandler exposes the extraction pipeline over HTTP
type ProcessHandler struct {
	pipeline *usecase.PipelineService
	timeout  time.Duration
}

// NewProcessHandler creates a ProcessHandler. timeout is the per-request
// wall-clock bound; in-flight provider calls are cancelled when it expires.
func NewProcessHandler(pipeline *usecase.PipelineService, timeout time.Duration) *ProcessHandler {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ProcessHandler{pipeline: pipeline, timeout: timeout}
}

type processFlags struct {
	Provider        string `json:"provider"`
	ExtractTasks    *bool  `json:"extractTasks"`
	GenerateSummary *bool  `json:"generateSummary"`
	ExtractMetadata *bool  `json:"extractMetadata"`
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func (f processFlags) provider() string {
	if f.Provider == "" {
		return "gemini"
	}
	return f.Provider
}

// ProcessTextRequest is the body of POST /api/process-text
type ProcessTextRequest struct {
	Text string `json:"text"`
	processFlags
}

// ProcessFileRequest is the body of POST /api/process-file
type ProcessFileRequest struct {
	FileContent string `json:"fileContent"`
	FileName    string `json:"fileName"`
	processFlags
}

// ProcessMultimodalRequest is the body of POST /api/process-multimodal
type ProcessMultimodalRequest struct {
	FileBase64 string `json:"fileBase64"`
	FileName   string `json:"fileName"`
	MimeType   string `json:"mimeType"`
	processFlags
}

// processData is the data envelope: the aggregate result plus the persisted
// identifiers from the best-effort persistence step.
type processData struct {
	*domain.ExtractionResult
	DocumentID       string   `json:"documentId,omitempty"`
	ExtractedTaskIDs []string `json:"extractedTaskIds,omitempty"`
}

// ProcessText runs the pipeline over free text
// POST /api/process-text
func (h *ProcessHandler) ProcessText(c *gin.Context) {
	var req ProcessTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.run(c, usecase.ProcessRequest{
		Content:         req.Text,
		Kind:            domain.ContentText,
		Provider:        req.provider(),
		ExtractTasks:    boolOr(req.ExtractTasks, true),
		GenerateSummary: boolOr(req.GenerateSummary, true),
		ExtractMetadata: boolOr(req.ExtractMetadata, true),
	})
}

// ProcessFile runs the pipeline over client-extracted file text
// POST /api/process-file
func (h *ProcessHandler) ProcessFile(c *gin.Context) {
	var req ProcessFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.run(c, usecase.ProcessRequest{
		Content:         req.FileContent,
		FileName:        req.FileName,
		Kind:            domain.ContentFile,
		Provider:        req.provider(),
		ExtractTasks:    boolOr(req.ExtractTasks, true),
		GenerateSummary: boolOr(req.GenerateSummary, true),
		ExtractMetadata: boolOr(req.ExtractMetadata, true),
	})
}

// ProcessMultimodal runs the pipeline over an inline media payload
// POST /api/process-multimodal
func (h *ProcessHandler) ProcessMultimodal(c *gin.Context) {
	var req ProcessMultimodalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	// Reject unsupported types before decoding the payload
	if !domain.SupportedMimeTypes[req.MimeType] {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": (&domain.UnsupportedMediaTypeError{MimeType: req.MimeType}).Error()})
		return
	}

	media, err := base64.StdEncoding.DecodeString(req.FileBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "fileBase64 is not valid base64"})
		return
	}

	h.run(c, usecase.ProcessRequest{
		FileName:        req.FileName,
		Kind:            domain.ContentMultimodal,
		MimeType:        req.MimeType,
		Media:           media,
		Provider:        req.provider(),
		ExtractTasks:    boolOr(req.ExtractTasks, true),
		GenerateSummary: boolOr(req.GenerateSummary, true),
		ExtractMetadata: boolOr(req.ExtractMetadata, true),
	})
}

func (h *ProcessHandler) run(c *gin.Context, req usecase.ProcessRequest) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	outcome, err := h.pipeline.Process(ctx, req)
	if err != nil {
		status := http.StatusInternalServerError
		if domain.IsValidationError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": processData{
			ExtractionResult: outcome.Result,
			DocumentID:       outcome.DocumentID,
			ExtractedTaskIDs: outcome.ExtractedTaskIDs,
		},
		"processingTime": outcome.ProcessingTime.Milliseconds(),
	})
}
