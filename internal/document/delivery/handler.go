package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"docflow-backend/internal/document/repository"
	"docflow-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves documents, processing logs and activities
type DocumentHandler struct {
	docRepo      repository.DocumentRepository
	logRepo      repository.ProcessingLogRepository
	activityRepo repository.ActivityRepository
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(docRepo repository.DocumentRepository, logRepo repository.ProcessingLogRepository, activityRepo repository.ActivityRepository) *DocumentHandler {
	return &DocumentHandler{docRepo: docRepo, logRepo: logRepo, activityRepo: activityRepo}
}

func listFilter(c *gin.Context) domain.ListFilter {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	return domain.ListFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
		Limit:    limit,
		Skip:     skip,
	}
}

// GetDocuments returns documents matching the query filters
// GET /api/documents?status=completed&limit=50&skip=0
func (h *DocumentHandler) GetDocuments(c *gin.Context) {
	docs, total, err := h.docRepo.List(c.Request.Context(), listFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "documents": docs, "total": total})
}

// GetDocument returns one document by id
// GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.docRepo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "document": doc})
}

// CreateDocumentRequest is the request body for recording a document manually,
// e.g. a dashboard import that never went through the pipeline.
type CreateDocumentRequest struct {
	FileName       string                   `json:"fileName"`
	ContentPreview string                   `json:"contentPreview"`
	Summary        string                   `json:"summary"`
	Metadata       *domain.DocumentMetadata `json:"metadata"`
}

// CreateDocument records a document manually
// POST /api/documents
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	doc := &domain.Document{
		ID:             domain.NewID("doc"),
		FileName:       req.FileName,
		ContentKind:    domain.ContentText,
		ContentPreview: req.ContentPreview,
		Summary:        req.Summary,
		Metadata:       req.Metadata,
		Status:         domain.DocumentStatusCompleted,
	}
	if err := h.docRepo.Create(c.Request.Context(), doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "document": doc})
}

// UpdateDocumentRequest carries a partial update; nil fields are left untouched
type UpdateDocumentRequest struct {
	FileName *string                  `json:"fileName"`
	Summary  *string                  `json:"summary"`
	Status   *string                  `json:"status"`
	Metadata *domain.DocumentMetadata `json:"metadata"`
}

// UpdateDocument partially updates a document
// PATCH /api/documents/:id
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	var updates UpdateDocumentRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	doc, err := h.docRepo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if updates.FileName != nil {
		doc.FileName = *updates.FileName
	}
	if updates.Summary != nil {
		doc.Summary = *updates.Summary
	}
	if updates.Status != nil {
		doc.Status = domain.DocumentStatus(*updates.Status)
	}
	if updates.Metadata != nil {
		doc.Metadata = updates.Metadata
	}

	if err := h.docRepo.Update(c.Request.Context(), doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "document": doc})
}

// DeleteDocument deletes a document record. Extracted entities keep their
// denormalized sourceDocumentId; no cascade is attempted.
// DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.docRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "document deleted"})
}

// GetProcessingLogs returns pipeline audit entries
// GET /api/processing-logs?status=partial&limit=50&skip=0
func (h *DocumentHandler) GetProcessingLogs(c *gin.Context) {
	logs, total, err := h.logRepo.List(c.Request.Context(), listFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "logs": logs, "total": total})
}

// GetActivities returns UI activity entries
// GET /api/activities?limit=50&skip=0
func (h *DocumentHandler) GetActivities(c *gin.Context) {
	activities, total, err := h.activityRepo.List(c.Request.Context(), listFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "activities": activities, "total": total})
}

// CreateActivityRequest is the request body written by the dashboard
type CreateActivityRequest struct {
	Type      string         `json:"type" binding:"required"`
	Title     string         `json:"title" binding:"required"`
	ItemCount int            `json:"itemCount"`
	Prompt    string         `json:"prompt"`
	Mode      string         `json:"mode"`
	Files     []string       `json:"files"`
	Results   map[string]any `json:"results"`
}

// CreateActivity records one dashboard interaction
// POST /api/activities
func (h *DocumentHandler) CreateActivity(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	activity := &domain.Activity{
		ID:        domain.NewID("activity"),
		Type:      req.Type,
		Title:     req.Title,
		ItemCount: req.ItemCount,
		Prompt:    req.Prompt,
		Mode:      req.Mode,
		Files:     req.Files,
		Results:   req.Results,
	}
	if err := h.activityRepo.Create(c.Request.Context(), activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "activity": activity})
}

// UpdateActivityRequest carries a partial update; nil fields are left untouched
type UpdateActivityRequest struct {
	Title     *string         `json:"title"`
	ItemCount *int            `json:"itemCount"`
	Results   *map[string]any `json:"results"`
}

// UpdateActivity partially updates an activity entry
// PATCH /api/activities/:id
func (h *DocumentHandler) UpdateActivity(c *gin.Context) {
	var updates UpdateActivityRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	activity, err := h.activityRepo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if updates.Title != nil {
		activity.Title = *updates.Title
	}
	if updates.ItemCount != nil {
		activity.ItemCount = *updates.ItemCount
	}
	if updates.Results != nil {
		activity.Results = *updates.Results
	}

	if err := h.activityRepo.Update(c.Request.Context(), activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "activity": activity})
}

// DeleteActivity deletes an activity entry
// DELETE /api/activities/:id
func (h *DocumentHandler) DeleteActivity(c *gin.Context) {
	if err := h.activityRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "activity deleted"})
}
