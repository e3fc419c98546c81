package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"docflow-backend/internal/calendar/usecase"
	"docflow-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// EventHandler handles calendar event HTTP requests
type EventHandler struct {
	eventUsecase *usecase.EventUsecase
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventUsecase *usecase.EventUsecase) *EventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

// CreateEventRequest is the request body for creating an event directly
type CreateEventRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	StartDate   string   `json:"startDate" binding:"required"`
	StartTime   string   `json:"startTime"`
	EndDate     string   `json:"endDate"`
	EndTime     string   `json:"endTime"`
	Location    string   `json:"location"`
	Attendees   []string `json:"attendees"`
	Priority    string   `json:"priority"`
	Reminders   []string `json:"reminders"`
}

// GetEvents returns events matching the query filters
// GET /api/calendar?status=scheduled&priority=high&limit=50&skip=0
func (h *EventHandler) GetEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	filter := domain.ListFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Limit:    limit,
		Skip:     skip,
	}

	events, total, err := h.eventUsecase.ListEvents(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "events": events, "total": total})
}

// CreateEvent creates a new calendar event directly
// POST /api/calendar
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	event, err := h.eventUsecase.CreateEvent(c.Request.Context(), &domain.CalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		StartTime:   req.StartTime,
		EndDate:     req.EndDate,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Attendees:   req.Attendees,
		Priority:    domain.Priority(req.Priority),
		Reminders:   req.Reminders,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "event": event})
}

// UpdateEvent partially updates a calendar event
// PATCH /api/calendar/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var updates usecase.EventUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	event, err := h.eventUsecase.UpdateEvent(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

// DeleteEvent deletes a calendar event
// DELETE /api/calendar/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.eventUsecase.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "event deleted"})
}
