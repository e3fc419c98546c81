package usecase

import (
	"context"
	"log"
	"time"
	"unicode/utf8"

	calendarrepo "docflow-backend/internal/calendar/repository"
	documentrepo "docflow-backend/internal/document/repository"
	"docflow-backend/internal/domain"
	mailrepo "docflow-backend/internal/mail/repository"
	taskrepo "docflow-backend/internal/task/repository"
	todorepo "docflow-backend/internal/todo/repository"
)

// maxContentPreview bounds the raw content stored on the Document record;
// the full content is never retained.
const maxContentPreview = 5000

// Persister maps a pipeline result onto entity records and writes them.
// Everything here is best-effort: a failed write is logged and counted but
// never fails the request, because the extraction result already computed is
// worth more to the caller than the durability side-channel.
type Persister struct {
	docs   documentrepo.DocumentRepository
	logs   documentrepo.ProcessingLogRepository
	tasks  taskrepo.TaskRepository
	events calendarrepo.EventRepository
	mails  mailrepo.MailRepository
	todos  todorepo.TodoRepository
}

// NewPersister wires the persistence mapper to its repositories
func NewPersister(
	docs documentrepo.DocumentRepository,
	logs documentrepo.ProcessingLogRepository,
	tasks taskrepo.TaskRepository,
	events calendarrepo.EventRepository,
	mails mailrepo.MailRepository,
	todos todorepo.TodoRepository,
) *Persister {
	return &Persister{docs: docs, logs: logs, tasks: tasks, events: events, mails: mails, todos: todos}
}

// PersistOutcome reports what the mapper managed to record
type PersistOutcome struct {
	DocumentID string
	TaskIDs    []string
	Status     domain.LogStatus
}

// Persist writes the Document, bulk-inserts each entity kind, attaches the
// task ids back onto the Document, and finishes with one ProcessingLog entry.
// The Document insert strictly precedes the entity inserts (they carry its
// id), which precede the task-id link update and the audit entry. The link
// update is a second, non-atomic write: after a crash between the two, the
// Document's extractedTaskIds may lag while the Tasks remain addressable.
func (p *Persister) Persist(ctx context.Context, result *domain.ExtractionResult, req ProcessRequest, duration time.Duration) *PersistOutcome {
	now := time.Now()
	confidence := result.ConfidencePtr()

	doc := &domain.Document{
		ID:               domain.NewID("doc"),
		FileName:         req.FileName,
		ContentKind:      req.Kind,
		ContentPreview:   truncate(req.Content, maxContentPreview),
		Status:           domain.DocumentStatusCompleted,
		ProcessingTimeMs: duration.Milliseconds(),
		Provider:         req.Provider,
	}
	if result.Summary != nil {
		doc.Summary = *result.Summary
	}
	doc.Metadata = result.Metadata

	failed := 0
	if err := p.docs.Create(ctx, doc); err != nil {
		log.Printf("[Persister] document insert failed: %v", err)
		p.writeLog(ctx, "", req, duration, domain.LogStatusFailed, domain.ExtractedCounts{})
		return &PersistOutcome{Status: domain.LogStatusFailed}
	}

	var counts domain.ExtractedCounts
	var taskIDs []string

	if result.Tasks != nil {
		tasks := make([]*domain.Task, 0, len(*result.Tasks))
		idByDraft := make(map[string]string, len(*result.Tasks))
		for _, draft := range *result.Tasks {
			id := domain.NewID("task")
			if draft.ID != "" {
				idByDraft[draft.ID] = id
			}
			// copy before remapping so the drafts in the response keep the
			// model's batch-local dependency ids
			deps := append([]string(nil), draft.Dependencies...)
			tasks = append(tasks, &domain.Task{
				ID:               id,
				Title:            draft.Title,
				Description:      draft.Description,
				Priority:         domain.ParsePriority(draft.Priority),
				Category:         draft.Category,
				EstimatedTime:    draft.EstimatedTime,
				Dependencies:     deps,
				Tags:             draft.Tags,
				Status:           domain.TaskStatusPending,
				DueDate:          domain.ParseDate(draft.DueDate),
				SourceDocumentID: doc.ID,
				Confidence:       confidence,
				CreatedAt:        now,
				UpdatedAt:        now,
			})
		}
		// remap model-assigned batch ids onto the generated ones where possible
		for _, task := range tasks {
			for i, dep := range task.Dependencies {
				if mapped, ok := idByDraft[dep]; ok {
					task.Dependencies[i] = mapped
				}
			}
			taskIDs = append(taskIDs, task.ID)
		}

		if err := p.tasks.CreateBatch(ctx, tasks); err != nil {
			log.Printf("[Persister] task batch insert failed: %v", err)
			failed++
			taskIDs = nil
		} else {
			counts.Tasks = len(tasks)
			if len(taskIDs) > 0 {
				if err := p.docs.UpdateTaskIDs(ctx, doc.ID, taskIDs); err != nil {
					log.Printf("[Persister] task-id link update failed: %v", err)
					failed++
				}
			}
		}
	}

	if result.CalendarEvents != nil {
		events := make([]*domain.CalendarEvent, 0, len(*result.CalendarEvents))
		for _, draft := range *result.CalendarEvents {
			events = append(events, &domain.CalendarEvent{
				ID:               domain.NewID("event"),
				Title:            draft.Title,
				Description:      draft.Description,
				StartDate:        draft.StartDate,
				StartTime:        draft.StartTime,
				EndDate:          draft.EndDate,
				EndTime:          draft.EndTime,
				Location:         draft.Location,
				Attendees:        draft.Attendees,
				Priority:         domain.ParsePriority(draft.Priority),
				Status:           domain.EventStatusScheduled,
				Reminders:        draft.Reminders,
				SourceDocumentID: doc.ID,
				Confidence:       confidence,
				CreatedAt:        now,
				UpdatedAt:        now,
			})
		}
		if err := p.events.CreateBatch(ctx, events); err != nil {
			log.Printf("[Persister] event batch insert failed: %v", err)
			failed++
		} else {
			counts.CalendarEvents = len(events)
		}
	}

	if result.MailDrafts != nil {
		mails := make([]*domain.MailDraft, 0, len(*result.MailDrafts))
		for _, draft := range *result.MailDrafts {
			mails = append(mails, &domain.MailDraft{
				ID:               domain.NewID("mail"),
				Recipient:        draft.Recipient,
				Subject:          draft.Subject,
				Body:             draft.Body,
				Context:          draft.Context,
				Tone:             domain.ParseTone(draft.Tone),
				Priority:         domain.ParsePriority(draft.Priority),
				Category:         domain.ParseMailCategory(draft.Category),
				Status:           domain.MailStatusDraft,
				SourceDocumentID: doc.ID,
				Confidence:       confidence,
				GeneratedAt:      now,
				CreatedAt:        now,
				UpdatedAt:        now,
			})
		}
		if err := p.mails.CreateBatch(ctx, mails); err != nil {
			log.Printf("[Persister] mail batch insert failed: %v", err)
			failed++
		} else {
			counts.MailDrafts = len(mails)
		}
	}

	if result.TodoItems != nil {
		todos := make([]*domain.Todo, 0, len(*result.TodoItems))
		for _, draft := range *result.TodoItems {
			todos = append(todos, &domain.Todo{
				ID:               domain.NewID("todo"),
				Text:             draft.Text,
				Description:      draft.Description,
				Completed:        false,
				DueDate:          domain.ParseDate(draft.DueDate),
				Priority:         domain.ParsePriority(draft.Priority),
				Category:         draft.Category,
				EstimatedTime:    draft.EstimatedTime,
				Subtasks:         draft.Subtasks,
				SourceDocumentID: doc.ID,
				CreatedAt:        now,
				UpdatedAt:        now,
			})
		}
		if err := p.todos.CreateBatch(ctx, todos); err != nil {
			log.Printf("[Persister] todo batch insert failed: %v", err)
			failed++
		} else {
			counts.TodoItems = len(todos)
		}
	}

	status := domain.LogStatusSuccess
	if failed > 0 {
		status = domain.LogStatusPartial
	}
	p.writeLog(ctx, doc.ID, req, duration, status, counts)

	return &PersistOutcome{DocumentID: doc.ID, TaskIDs: taskIDs, Status: status}
}

// writeLog records the audit entry; a logging failure must not fail anything
func (p *Persister) writeLog(ctx context.Context, docID string, req ProcessRequest, duration time.Duration, status domain.LogStatus, counts domain.ExtractedCounts) {
	entry := &domain.ProcessingLog{
		DocumentID:     docID,
		ProcessingType: req.Kind,
		Provider:       req.Provider,
		DurationMs:     duration.Milliseconds(),
		Status:         status,
		Counts:         counts,
	}
	if err := p.logs.Create(ctx, entry); err != nil {
		log.Printf("[Persister] processing log insert failed: %v", err)
	}
}

// truncate cuts s to at most n bytes without splitting a UTF-8 rune; a raw
// byte slice could leave an invalid tail that Postgres rejects on insert.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
