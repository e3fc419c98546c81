package repository

import (
	"context"

	"docflow-backend/internal/domain"
)

// DocumentRepository abstracts document persistence
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	FindByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Document, int64, error)
	Update(ctx context.Context, doc *domain.Document) error
	UpdateTaskIDs(ctx context.Context, id string, taskIDs []string) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]*domain.Document, error)
}

// ProcessingLogRepository abstracts the pipeline audit log
type ProcessingLogRepository interface {
	Create(ctx context.Context, entry *domain.ProcessingLog) error
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.ProcessingLog, int64, error)
}

// ActivityRepository abstracts the UI-facing activity log
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	FindByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Activity, int64, error)
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id string) error
}
