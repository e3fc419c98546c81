package usecase

import (
	"context"
	"log"
	"sync"

	calendarrepo "docflow-backend/internal/calendar/repository"
	documentrepo "docflow-backend/internal/document/repository"
	"docflow-backend/internal/domain"
	mailrepo "docflow-backend/internal/mail/repository"
	taskrepo "docflow-backend/internal/task/repository"
	todorepo "docflow-backend/internal/todo/repository"
)

// SearchResult is the typed envelope returned per entity kind
type SearchResult struct {
	Tasks          []*domain.Task          `json:"tasks"`
	Todos          []*domain.Todo          `json:"todos"`
	CalendarEvents []*domain.CalendarEvent `json:"calendarEvents"`
	MailDrafts     []*domain.MailDraft     `json:"mailDrafts"`
	Documents      []*domain.Document      `json:"documents"`
	Total          int                     `json:"total"`
}

// SearchUsecase fans a substring query out across every collection
type SearchUsecase struct {
	tasks  taskrepo.TaskRepository
	todos  todorepo.TodoRepository
	events calendarrepo.EventRepository
	mails  mailrepo.MailRepository
	docs   documentrepo.DocumentRepository
}

// NewSearchUsecase creates a SearchUsecase over the given repositories
func NewSearchUsecase(
	tasks taskrepo.TaskRepository,
	todos todorepo.TodoRepository,
	events calendarrepo.EventRepository,
	mails mailrepo.MailRepository,
	docs documentrepo.DocumentRepository,
) *SearchUsecase {
	return &SearchUsecase{tasks: tasks, todos: todos, events: events, mails: mails, docs: docs}
}

// Search runs the per-collection queries in parallel. A failing collection is
// logged and returned empty rather than failing the whole search.
func (u *SearchUsecase) Search(ctx context.Context, query string, limit int) *SearchResult {
	if limit <= 0 {
		limit = 20
	}

	result := &SearchResult{
		Tasks:          []*domain.Task{},
		Todos:          []*domain.Todo{},
		CalendarEvents: []*domain.CalendarEvent{},
		MailDrafts:     []*domain.MailDraft{},
		Documents:      []*domain.Document{},
	}

	var wg sync.WaitGroup
	collect := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				log.Printf("[Search] %s query failed: %v", name, err)
			}
		}()
	}

	collect("tasks", func() error {
		found, err := u.tasks.Search(ctx, query, limit)
		if err != nil {
			return err
		}
		result.Tasks = found
		return nil
	})
	collect("todos", func() error {
		found, err := u.todos.Search(ctx, query, limit)
		if err != nil {
			return err
		}
		result.Todos = found
		return nil
	})
	collect("events", func() error {
		found, err := u.events.Search(ctx, query, limit)
		if err != nil {
			return err
		}
		result.CalendarEvents = found
		return nil
	})
	collect("mails", func() error {
		found, err := u.mails.Search(ctx, query, limit)
		if err != nil {
			return err
		}
		result.MailDrafts = found
		return nil
	})
	collect("documents", func() error {
		found, err := u.docs.Search(ctx, query, limit)
		if err != nil {
			return err
		}
		result.Documents = found
		return nil
	})

	wg.Wait()

	result.Total = len(result.Tasks) + len(result.Todos) + len(result.CalendarEvents) +
		len(result.MailDrafts) + len(result.Documents)
	return result
}
