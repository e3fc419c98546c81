package usecase

import (
	"context"
	"testing"

	"docflow-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskRepo struct {
	tasks map[string]*domain.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*domain.Task{}}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) CreateBatch(ctx context.Context, tasks []*domain.Task) error {
	for _, task := range tasks {
		r.tasks[task.ID] = task
	}
	return nil
}

func (r *fakeTaskRepo) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Task, int64, error) {
	var out []*domain.Task
	for _, task := range r.tasks {
		out = append(out, task)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return domain.ErrNotFound
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) Search(ctx context.Context, query string, limit int) ([]*domain.Task, error) {
	return nil, nil
}

func strPtr(s string) *string { return &s }

func TestUpdateTaskCompletedStampsCompletedAt(t *testing.T) {
	u := NewTaskUsecase(newFakeTaskRepo())
	ctx := context.Background()

	task, err := u.CreateTask(ctx, "Write report", "", "high", "", "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, task.Status)

	done, err := u.UpdateTask(ctx, task.ID, TaskUpdateRequest{Status: strPtr("completed")})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)

	// moving away from completed clears the stamp
	reopened, err := u.UpdateTask(ctx, task.ID, TaskUpdateRequest{Status: strPtr("in-progress")})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInProgress, reopened.Status)
	assert.Nil(t, reopened.CompletedAt)
}

func TestUpdateTaskNormalizesPriority(t *testing.T) {
	u := NewTaskUsecase(newFakeTaskRepo())
	ctx := context.Background()

	task, err := u.CreateTask(ctx, "Write report", "", "bogus", "", "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, task.Priority)

	updated, err := u.UpdateTask(ctx, task.ID, TaskUpdateRequest{Priority: strPtr("urgent")})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityUrgent, updated.Priority)
}

func TestUpdateTaskUnknownID(t *testing.T) {
	u := NewTaskUsecase(newFakeTaskRepo())
	ctx := context.Background()
	_, err := u.UpdateTask(ctx, "task_missing", TaskUpdateRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
