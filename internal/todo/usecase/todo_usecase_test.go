package usecase

import (
	"context"
	"testing"

	"docflow-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTodoRepo is an in-memory TodoRepository for usecase tests
type fakeTodoRepo struct {
	todos map[string]*domain.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: map[string]*domain.Todo{}}
}

func (r *fakeTodoRepo) Create(ctx context.Context, todo *domain.Todo) error {
	r.todos[todo.ID] = todo
	return nil
}

func (r *fakeTodoRepo) CreateBatch(ctx context.Context, todos []*domain.Todo) error {
	for _, todo := range todos {
		r.todos[todo.ID] = todo
	}
	return nil
}

func (r *fakeTodoRepo) FindByID(ctx context.Context, id string) (*domain.Todo, error) {
	todo, ok := r.todos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *todo
	return &copied, nil
}

func (r *fakeTodoRepo) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Todo, int64, error) {
	var out []*domain.Todo
	for _, todo := range r.todos {
		out = append(out, todo)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTodoRepo) Update(ctx context.Context, todo *domain.Todo) error {
	if _, ok := r.todos[todo.ID]; !ok {
		return domain.ErrNotFound
	}
	r.todos[todo.ID] = todo
	return nil
}

func (r *fakeTodoRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.todos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.todos, id)
	return nil
}

func (r *fakeTodoRepo) Search(ctx context.Context, query string, limit int) ([]*domain.Todo, error) {
	return nil, nil
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestUpdateTodoCompletedStampsCompletedAt(t *testing.T) {
	repo := newFakeTodoRepo()
	u := NewTodoUsecase(repo)
	ctx := context.Background()

	todo, err := u.CreateTodo(ctx, "Book room", "", "medium", "", "", nil, nil)
	require.NoError(t, err)
	assert.False(t, todo.Completed)
	assert.Nil(t, todo.CompletedAt)

	updated, err := u.UpdateTodo(ctx, todo.ID, TodoUpdateRequest{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)

	// reopening clears the timestamp again
	reopened, err := u.UpdateTodo(ctx, todo.ID, TodoUpdateRequest{Completed: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, reopened.Completed)
	assert.Nil(t, reopened.CompletedAt)
}

func TestUpdateTodoMergesOnlyProvidedFields(t *testing.T) {
	repo := newFakeTodoRepo()
	u := NewTodoUsecase(repo)
	ctx := context.Background()

	todo, err := u.CreateTodo(ctx, "Book room", "for the review", "high", "office", "", nil, nil)
	require.NoError(t, err)

	updated, err := u.UpdateTodo(ctx, todo.ID, TodoUpdateRequest{Text: strPtr("Book the big room")})
	require.NoError(t, err)
	assert.Equal(t, "Book the big room", updated.Text)
	assert.Equal(t, "for the review", updated.Description)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
	assert.Equal(t, "office", updated.Category)
}

func TestUpdateTodoDueDate(t *testing.T) {
	repo := newFakeTodoRepo()
	u := NewTodoUsecase(repo)
	ctx := context.Background()

	todo, err := u.CreateTodo(ctx, "Book room", "", "", "", "", nil, strPtr("2026-09-10"))
	require.NoError(t, err)
	require.NotNil(t, todo.DueDate)

	// an explicit empty string clears the due date
	updated, err := u.UpdateTodo(ctx, todo.ID, TodoUpdateRequest{DueDate: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)
}

func TestUpdateTodoUnknownID(t *testing.T) {
	u := NewTodoUsecase(newFakeTodoRepo())
	ctx := context.Background()
	_, err := u.UpdateTodo(ctx, "todo_missing", TodoUpdateRequest{Completed: boolPtr(true)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
