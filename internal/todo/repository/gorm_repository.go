package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"docflow-backend/internal/domain"

	"gorm.io/gorm"
)

type gormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a new GORM-based TodoRepository
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

func (r *gormTodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	if todo.ID == "" {
		todo.ID = domain.NewID("todo")
	}
	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *gormTodoRepository) CreateBatch(ctx context.Context, todos []*domain.Todo) error {
	if len(todos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(todos).Error
}

func (r *gormTodoRepository) FindByID(ctx context.Context, id string) (*domain.Todo, error) {
	var todo domain.Todo
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &todo, nil
}

func (r *gormTodoRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Todo, int64, error) {
	filter = filter.Bounded()

	var todos []*domain.Todo
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Todo{})
	if filter.Status != "" {
		// Todos have no status column; map the filter onto the completed flag
		query = query.Where("completed = ?", filter.Status == "completed")
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Skip).Find(&todos).Error
	return todos, total, err
}

func (r *gormTodoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	todo.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(todo).Error
}

func (r *gormTodoRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Todo{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *gormTodoRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).Where("LOWER(text) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Limit(limit).Find(&todos).Error
	return todos, err
}
