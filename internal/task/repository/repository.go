package repository

import (
	"context"

	"docflow-backend/internal/domain"
)

// TaskRepository abstracts task persistence
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	CreateBatch(ctx context.Context, tasks []*domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Task, int64, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]*domain.Task, error)
}
