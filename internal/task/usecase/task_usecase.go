package usecase

import (
	"context"
	"time"

	"docflow-backend/internal/domain"
	"docflow-backend/internal/task/repository"
)

// TaskUpdateRequest carries a partial update; nil fields are left untouched
type TaskUpdateRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Priority      *string   `json:"priority"`
	Category      *string   `json:"category"`
	EstimatedTime *string   `json:"estimatedTime"`
	Tags          *[]string `json:"tags"`
	Status        *string   `json:"status"`
	DueDate       *string   `json:"dueDate"`
}

// TaskUsecase provides task CRUD on top of the repository
type TaskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new TaskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) *TaskUsecase {
	return &TaskUsecase{taskRepo: taskRepo}
}

func (u *TaskUsecase) CreateTask(ctx context.Context, title, description, priority, category, estimatedTime string, tags []string, dueDate *string) (*domain.Task, error) {
	task := &domain.Task{
		ID:            domain.NewID("task"),
		Title:         title,
		Description:   description,
		Priority:      domain.ParsePriority(priority),
		Category:      category,
		EstimatedTime: estimatedTime,
		Tags:          tags,
		Status:        domain.TaskStatusPending,
	}
	if dueDate != nil {
		task.DueDate = domain.ParseDate(*dueDate)
	}
	if err := u.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *TaskUsecase) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return u.taskRepo.FindByID(ctx, id)
}

func (u *TaskUsecase) ListTasks(ctx context.Context, filter domain.ListFilter) ([]*domain.Task, int64, error) {
	return u.taskRepo.List(ctx, filter)
}

// UpdateTask merges the non-nil fields of the request into the stored task.
// Moving the status to completed stamps completedAt; moving it away clears it.
func (u *TaskUsecase) UpdateTask(ctx context.Context, id string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Priority != nil {
		task.Priority = domain.ParsePriority(*updates.Priority)
	}
	if updates.Category != nil {
		task.Category = *updates.Category
	}
	if updates.EstimatedTime != nil {
		task.EstimatedTime = *updates.EstimatedTime
	}
	if updates.Tags != nil {
		task.Tags = *updates.Tags
	}
	if updates.Status != nil {
		task.Status = domain.TaskStatus(*updates.Status)
		if task.Status == domain.TaskStatusCompleted {
			if task.CompletedAt == nil {
				now := time.Now()
				task.CompletedAt = &now
			}
		} else {
			task.CompletedAt = nil
		}
	}
	if updates.DueDate != nil {
		if *updates.DueDate == "" {
			task.DueDate = nil
		} else {
			task.DueDate = domain.ParseDate(*updates.DueDate)
		}
	}

	if err := u.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *TaskUsecase) DeleteTask(ctx context.Context, id string) error {
	return u.taskRepo.Delete(ctx, id)
}
