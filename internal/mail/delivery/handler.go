package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"docflow-backend/internal/domain"
	"docflow-backend/internal/mail/usecase"

	"github.com/gin-gonic/gin"
)

// MailHandler handles mail draft HTTP requests
type MailHandler struct {
	mailUsecase *usecase.MailUsecase
}

// NewMailHandler creates a new MailHandler
func NewMailHandler(mailUsecase *usecase.MailUsecase) *MailHandler {
	return &MailHandler{mailUsecase: mailUsecase}
}

// CreateMailRequest is the request body for creating a draft directly
type CreateMailRequest struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject" binding:"required"`
	Body      string `json:"body" binding:"required"`
	Context   string `json:"context"`
	Tone      string `json:"tone"`
	Priority  string `json:"priority"`
	Category  string `json:"category"`
}

// GetDrafts returns mail drafts matching the query filters
// GET /api/mails?status=draft&category=general&limit=50&skip=0
func (h *MailHandler) GetDrafts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	filter := domain.ListFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
		Limit:    limit,
		Skip:     skip,
	}

	drafts, total, err := h.mailUsecase.ListDrafts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "mails": drafts, "total": total})
}

// CreateDraft creates a new mail draft directly
// POST /api/mails
func (h *MailHandler) CreateDraft(c *gin.Context) {
	var req CreateMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	draft, err := h.mailUsecase.CreateDraft(c.Request.Context(), &domain.MailDraft{
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Body:      req.Body,
		Context:   req.Context,
		Tone:      domain.MailTone(req.Tone),
		Priority:  domain.Priority(req.Priority),
		Category:  domain.MailCategory(req.Category),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "mail": draft})
}

// UpdateDraft partially updates a mail draft
// PATCH /api/mails/:id
func (h *MailHandler) UpdateDraft(c *gin.Context) {
	var updates usecase.MailUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	draft, err := h.mailUsecase.UpdateDraft(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "mail draft not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "mail": draft})
}

// DeleteDraft deletes a mail draft
// DELETE /api/mails/:id
func (h *MailHandler) DeleteDraft(c *gin.Context) {
	if err := h.mailUsecase.DeleteDraft(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "mail draft not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "mail draft deleted"})
}
