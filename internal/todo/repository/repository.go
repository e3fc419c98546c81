package repository

import (
	"context"

	"docflow-backend/internal/domain"
)

// TodoRepository abstracts todo persistence
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) error
	CreateBatch(ctx context.Context, todos []*domain.Todo) error
	FindByID(ctx context.Context, id string) (*domain.Todo, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Todo, int64, error)
	Update(ctx context.Context, todo *domain.Todo) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]*domain.Todo, error)
}
