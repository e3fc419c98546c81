package usecase

import (
	"context"
	"time"

	"docflow-backend/internal/domain"
	"docflow-backend/internal/todo/repository"
)

// TodoUpdateRequest carries a partial update; nil fields are left untouched
type TodoUpdateRequest struct {
	Text          *string   `json:"text"`
	Description   *string   `json:"description"`
	Completed     *bool     `json:"completed"`
	Priority      *string   `json:"priority"`
	Category      *string   `json:"category"`
	EstimatedTime *string   `json:"estimatedTime"`
	Subtasks      *[]string `json:"subtasks"`
	DueDate       *string   `json:"dueDate"`
}

// TodoUsecase provides todo CRUD on top of the repository
type TodoUsecase struct {
	todoRepo repository.TodoRepository
}

// NewTodoUsecase creates a new TodoUsecase
func NewTodoUsecase(todoRepo repository.TodoRepository) *TodoUsecase {
	return &TodoUsecase{todoRepo: todoRepo}
}

func (u *TodoUsecase) CreateTodo(ctx context.Context, text, description, priority, category, estimatedTime string, subtasks []string, dueDate *string) (*domain.Todo, error) {
	todo := &domain.Todo{
		ID:            domain.NewID("todo"),
		Text:          text,
		Description:   description,
		Priority:      domain.ParsePriority(priority),
		Category:      category,
		EstimatedTime: estimatedTime,
		Subtasks:      subtasks,
		Completed:     false,
	}
	if dueDate != nil {
		todo.DueDate = domain.ParseDate(*dueDate)
	}
	if err := u.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (u *TodoUsecase) GetTodo(ctx context.Context, id string) (*domain.Todo, error) {
	return u.todoRepo.FindByID(ctx, id)
}

func (u *TodoUsecase) ListTodos(ctx context.Context, filter domain.ListFilter) ([]*domain.Todo, int64, error) {
	return u.todoRepo.List(ctx, filter)
}

// UpdateTodo merges the non-nil fields of the request into the stored todo.
// The completedAt timestamp moves in lockstep with the completed flag.
func (u *TodoUsecase) UpdateTodo(ctx context.Context, id string, updates TodoUpdateRequest) (*domain.Todo, error) {
	todo, err := u.todoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Text != nil {
		todo.Text = *updates.Text
	}
	if updates.Description != nil {
		todo.Description = *updates.Description
	}
	if updates.Completed != nil {
		todo.Completed = *updates.Completed
		if todo.Completed {
			now := time.Now()
			todo.CompletedAt = &now
		} else {
			todo.CompletedAt = nil
		}
	}
	if updates.Priority != nil {
		todo.Priority = domain.ParsePriority(*updates.Priority)
	}
	if updates.Category != nil {
		todo.Category = *updates.Category
	}
	if updates.EstimatedTime != nil {
		todo.EstimatedTime = *updates.EstimatedTime
	}
	if updates.Subtasks != nil {
		todo.Subtasks = *updates.Subtasks
	}
	if updates.DueDate != nil {
		if *updates.DueDate == "" {
			todo.DueDate = nil
		} else {
			todo.DueDate = domain.ParseDate(*updates.DueDate)
		}
	}

	if err := u.todoRepo.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (u *TodoUsecase) DeleteTodo(ctx context.Context, id string) error {
	return u.todoRepo.Delete(ctx, id)
}
