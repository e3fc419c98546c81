package api

import (
	"net/http"

	calendarDelivery "docflow-backend/internal/calendar/delivery"
	documentDelivery "docflow-backend/internal/document/delivery"
	extractionDelivery "docflow-backend/internal/extraction/delivery"
	mailDelivery "docflow-backend/internal/mail/delivery"
	searchDelivery "docflow-backend/internal/search/delivery"
	taskDelivery "docflow-backend/internal/task/delivery"
	todoDelivery "docflow-backend/internal/todo/delivery"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every delivery handler the router mounts
type Handlers struct {
	Process  *extractionDelivery.ProcessHandler
	Tasks    *taskDelivery.TaskHandler
	Todos    *todoDelivery.TodoHandler
	Calendar *calendarDelivery.EventHandler
	Mails    *mailDelivery.MailHandler
	Document *documentDelivery.DocumentHandler
	Search   *searchDelivery.SearchHandler
}

// SetupRoutes mounts the whole API surface under /api
func SetupRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Extraction pipeline
		api.POST("/process-text", h.Process.ProcessText)
		api.POST("/process-file", h.Process.ProcessFile)
		api.POST("/process-multimodal", h.Process.ProcessMultimodal)

		// Task routes
		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.Tasks.GetTasks)
			tasks.POST("", h.Tasks.CreateTask)
			tasks.PATCH("/:id", h.Tasks.UpdateTask)
			tasks.DELETE("/:id", h.Tasks.DeleteTask)
		}

		// Todo routes
		todos := api.Group("/todos")
		{
			todos.GET("", h.Todos.GetTodos)
			todos.POST("", h.Todos.CreateTodo)
			todos.PATCH("/:id", h.Todos.UpdateTodo)
			todos.DELETE("/:id", h.Todos.DeleteTodo)
		}

		// Calendar routes
		calendar := api.Group("/calendar")
		{
			calendar.GET("", h.Calendar.GetEvents)
			calendar.POST("", h.Calendar.CreateEvent)
			calendar.PATCH("/:id", h.Calendar.UpdateEvent)
			calendar.DELETE("/:id", h.Calendar.DeleteEvent)
		}

		// Mail draft routes
		mails := api.Group("/mails")
		{
			mails.GET("", h.Mails.GetDrafts)
			mails.POST("", h.Mails.CreateDraft)
			mails.PATCH("/:id", h.Mails.UpdateDraft)
			mails.DELETE("/:id", h.Mails.DeleteDraft)
		}

		// Document and audit routes
		documents := api.Group("/documents")
		{
			documents.GET("", h.Document.GetDocuments)
			documents.GET("/:id", h.Document.GetDocument)
			documents.POST("", h.Document.CreateDocument)
			documents.PATCH("/:id", h.Document.UpdateDocument)
			documents.DELETE("/:id", h.Document.DeleteDocument)
		}
		api.GET("/processing-logs", h.Document.GetProcessingLogs)

		activities := api.Group("/activities")
		{
			activities.GET("", h.Document.GetActivities)
			activities.POST("", h.Document.CreateActivity)
			activities.PATCH("/:id", h.Document.UpdateActivity)
			activities.DELETE("/:id", h.Document.DeleteActivity)
		}

		// Cross-collection search
		api.GET("/search", h.Search.Search)
	}
}
