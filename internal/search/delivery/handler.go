package delivery

import (
	"net/http"
	"strconv"

	"docflow-backend/internal/search/usecase"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves the cross-collection substring search
type SearchHandler struct {
	searchUsecase *usecase.SearchUsecase
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(searchUsecase *usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase}
}

// Search runs a case-insensitive substring search across all collections
// GET /api/search?q=budget&limit=20
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "query parameter q is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result := h.searchUsecase.Search(c.Request.Context(), query, limit)
	c.JSON(http.StatusOK, gin.H{"success": true, "results": result, "total": result.Total})
}
