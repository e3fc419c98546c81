package repository

import (
	"context"

	"docflow-backend/internal/domain"
)

// EventRepository abstracts calendar event persistence
type EventRepository interface {
	Create(ctx context.Context, event *domain.CalendarEvent) error
	CreateBatch(ctx context.Context, events []*domain.CalendarEvent) error
	FindByID(ctx context.Context, id string) (*domain.CalendarEvent, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.CalendarEvent, int64, error)
	Update(ctx context.Context, event *domain.CalendarEvent) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]*domain.CalendarEvent, error)
}
