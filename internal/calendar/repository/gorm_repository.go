package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"docflow-backend/internal/domain"

	"gorm.io/gorm"
)

type gormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM-based EventRepository
func NewGormEventRepository(db *gorm.DB) EventRepository {
	return &gormEventRepository{db: db}
}

func (r *gormEventRepository) Create(ctx context.Context, event *domain.CalendarEvent) error {
	if event.ID == "" {
		event.ID = domain.NewID("event")
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *gormEventRepository) CreateBatch(ctx context.Context, events []*domain.CalendarEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(events).Error
}

func (r *gormEventRepository) FindByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *gormEventRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.CalendarEvent, int64, error) {
	filter = filter.Bounded()

	var events []*domain.CalendarEvent
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.CalendarEvent{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("start_date ASC, created_at DESC").
		Limit(filter.Limit).Offset(filter.Skip).Find(&events).Error
	return events, total, err
}

func (r *gormEventRepository) Update(ctx context.Context, event *domain.CalendarEvent) error {
	event.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *gormEventRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.CalendarEvent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *gormEventRepository) Search(ctx context.Context, query string, limit int) ([]*domain.CalendarEvent, error) {
	var events []*domain.CalendarEvent
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?", pattern, pattern, pattern).
		Limit(limit).Find(&events).Error
	return events, err
}
