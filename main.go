package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	api "docflow-backend/cmd/api"
	calendarDelivery "docflow-backend/internal/calendar/delivery"
	calendarRepo "docflow-backend/internal/calendar/repository"
	calendarUsecase "docflow-backend/internal/calendar/usecase"
	documentDelivery "docflow-backend/internal/document/delivery"
	documentRepo "docflow-backend/internal/document/repository"
	extractionDelivery "docflow-backend/internal/extraction/delivery"
	extractionUsecase "docflow-backend/internal/extraction/usecase"
	mailDelivery "docflow-backend/internal/mail/delivery"
	mailRepo "docflow-backend/internal/mail/repository"
	mailUsecase "docflow-backend/internal/mail/usecase"
	searchDelivery "docflow-backend/internal/search/delivery"
	searchUsecase "docflow-backend/internal/search/usecase"
	taskDelivery "docflow-backend/internal/task/delivery"
	taskRepo "docflow-backend/internal/task/repository"
	taskUsecase "docflow-backend/internal/task/usecase"
	todoDelivery "docflow-backend/internal/todo/delivery"
	todoRepo "docflow-backend/internal/todo/repository"
	todoUsecase "docflow-backend/internal/todo/usecase"
	"docflow-backend/pkg/ai"
	"docflow-backend/pkg/config"
	"docflow-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	tasks := taskRepo.NewGormTaskRepository(db)
	todos := todoRepo.NewGormTodoRepository(db)
	events := calendarRepo.NewGormEventRepository(db)
	mails := mailRepo.NewGormMailRepository(db)
	docs := documentRepo.NewGormDocumentRepository(db)
	logs := documentRepo.NewGormProcessingLogRepository(db)
	activities := documentRepo.NewGormActivityRepository(db)

	// AI providers: Gemini is primary and the only multimodal-capable one,
	// Ollama is the single-shot fallback for text-bearing calls.
	gemini := ai.NewGeminiProvider(cfg.GeminiAPIKey, cfg.GeminiModel)
	ollama := ai.NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel)
	fallback := ai.NewFallbackClient(gemini, ollama, cfg.AIMaxRetries)

	// Extraction pipeline
	persister := extractionUsecase.NewPersister(docs, logs, tasks, events, mails, todos)
	pipeline := extractionUsecase.NewPipelineService(fallback, gemini, persister)

	// Handlers
	handlers := api.Handlers{
		Process:  extractionDelivery.NewProcessHandler(pipeline, cfg.ProcessTimeout),
		Tasks:    taskDelivery.NewTaskHandler(taskUsecase.NewTaskUsecase(tasks)),
		Todos:    todoDelivery.NewTodoHandler(todoUsecase.NewTodoUsecase(todos)),
		Calendar: calendarDelivery.NewEventHandler(calendarUsecase.NewEventUsecase(events)),
		Mails:    mailDelivery.NewMailHandler(mailUsecase.NewMailUsecase(mails)),
		Document: documentDelivery.NewDocumentHandler(docs, logs, activities),
		Search:   searchDelivery.NewSearchHandler(searchUsecase.NewSearchUsecase(tasks, todos, events, mails, docs)),
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.NewEngine(handlers),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
