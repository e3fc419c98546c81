package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"docflow-backend/internal/domain"
	"docflow-backend/internal/todo/usecase"

	"github.com/gin-gonic/gin"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoUsecase *usecase.TodoUsecase
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoUsecase *usecase.TodoUsecase) *TodoHandler {
	return &TodoHandler{todoUsecase: todoUsecase}
}

// CreateTodoRequest is the request body for creating a todo manually
type CreateTodoRequest struct {
	Text          string   `json:"text" binding:"required"`
	Description   string   `json:"description"`
	Priority      string   `json:"priority"`
	Category      string   `json:"category"`
	EstimatedTime string   `json:"estimatedTime"`
	Subtasks      []string `json:"subtasks"`
	DueDate       *string  `json:"dueDate"`
}

// GetTodos returns todos matching the query filters
// GET /api/todos?status=completed&priority=high&limit=50&skip=0
func (h *TodoHandler) GetTodos(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	filter := domain.ListFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
		Limit:    limit,
		Skip:     skip,
	}

	todos, total, err := h.todoUsecase.ListTodos(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "todos": todos, "total": total})
}

// CreateTodo creates a new todo manually
// POST /api/todos
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	todo, err := h.todoUsecase.CreateTodo(c.Request.Context(), req.Text, req.Description, req.Priority, req.Category, req.EstimatedTime, req.Subtasks, req.DueDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "todo": todo})
}

// UpdateTodo partially updates a todo
// PATCH /api/todos/:id
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	var updates usecase.TodoUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	todo, err := h.todoUsecase.UpdateTodo(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "todo": todo})
}

// DeleteTodo deletes a todo
// DELETE /api/todos/:id
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	if err := h.todoUsecase.DeleteTodo(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "todo deleted"})
}
