package usecase

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	calendarrepo "docflow-backend/internal/calendar/repository"
	documentrepo "docflow-backend/internal/document/repository"
	"docflow-backend/internal/domain"
	mailrepo "docflow-backend/internal/mail/repository"
	taskrepo "docflow-backend/internal/task/repository"
	todorepo "docflow-backend/internal/todo/repository"
	"docflow-backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type persistEnv struct {
	persister *Persister
	docs      documentrepo.DocumentRepository
	logs      documentrepo.ProcessingLogRepository
	tasks     taskrepo.TaskRepository
	events    calendarrepo.EventRepository
	mails     mailrepo.MailRepository
	todos     todorepo.TodoRepository
}

func newPersistEnv(t *testing.T) *persistEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	env := &persistEnv{
		docs:   documentrepo.NewGormDocumentRepository(db),
		logs:   documentrepo.NewGormProcessingLogRepository(db),
		tasks:  taskrepo.NewGormTaskRepository(db),
		events: calendarrepo.NewGormEventRepository(db),
		mails:  mailrepo.NewGormMailRepository(db),
		todos:  todorepo.NewGormTodoRepository(db),
	}
	env.persister = NewPersister(env.docs, env.logs, env.tasks, env.events, env.mails, env.todos)
	return env
}

func ptr[T any](v T) *T { return &v }

func TestPersistLinksTasksToDocument(t *testing.T) {
	env := newPersistEnv(t)
	ctx := context.Background()

	result := &domain.ExtractionResult{
		Intent: &domain.IntentResult{Intent: domain.IntentMeeting, Confidence: 0.9},
		Tasks: ptr([]domain.TaskDraft{
			{ID: "t1", Title: "Prepare slides", Priority: "high"},
			{ID: "t2", Title: "Send invite", Dependencies: []string{"t1"}},
		}),
		CalendarEvents: ptr([]domain.EventDraft{
			{Title: "Quarterly review", StartDate: "2026-09-03", StartTime: "10:00"},
		}),
		Summary: ptr("A quarterly review meeting is planned."),
	}
	req := ProcessRequest{Content: "Meeting Thursday.", Kind: domain.ContentText, Provider: "gemini"}

	outcome := env.persister.Persist(ctx, result, req, 250*time.Millisecond)
	require.NotEmpty(t, outcome.DocumentID)
	assert.True(t, strings.HasPrefix(outcome.DocumentID, "doc_"))
	require.Len(t, outcome.TaskIDs, 2)
	assert.Equal(t, domain.LogStatusSuccess, outcome.Status)

	// the document carries the generated task ids and the summary
	doc, err := env.docs.FindByID(ctx, outcome.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, outcome.TaskIDs, doc.ExtractedTaskIDs)
	assert.Equal(t, domain.DocumentStatusCompleted, doc.Status)
	assert.Equal(t, "A quarterly review meeting is planned.", doc.Summary)
	assert.Equal(t, int64(250), doc.ProcessingTimeMs)

	// tasks point back at the document and carry the intent confidence
	var slides, invite *domain.Task
	for _, id := range outcome.TaskIDs {
		task, err := env.tasks.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, outcome.DocumentID, task.SourceDocumentID)
		require.NotNil(t, task.Confidence)
		assert.InDelta(t, 0.9, *task.Confidence, 1e-9)
		switch task.Title {
		case "Prepare slides":
			slides = task
		case "Send invite":
			invite = task
		}
	}
	require.NotNil(t, slides)
	require.NotNil(t, invite)

	// the model-assigned dependency id was remapped onto the generated one
	require.Len(t, invite.Dependencies, 1)
	assert.Equal(t, slides.ID, invite.Dependencies[0])
	assert.Equal(t, domain.PriorityHigh, slides.Priority)
	assert.Equal(t, domain.TaskStatusPending, invite.Status)

	// the drafts in the result still hold the batch-local ids; the remap
	// works on a copy
	assert.Equal(t, []string{"t1"}, (*result.Tasks)[1].Dependencies)

	// one audit entry with the per-kind counts
	entries, _, err := env.logs.List(ctx, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, outcome.DocumentID, entries[0].DocumentID)
	assert.Equal(t, domain.LogStatusSuccess, entries[0].Status)
	assert.Equal(t, 2, entries[0].Counts.Tasks)
	assert.Equal(t, 1, entries[0].Counts.CalendarEvents)
	assert.Equal(t, 0, entries[0].Counts.TodoItems)
}

func TestPersistSkippedStagesWriteNothing(t *testing.T) {
	env := newPersistEnv(t)
	ctx := context.Background()

	result := &domain.ExtractionResult{Summary: ptr("Nothing actionable here.")}
	outcome := env.persister.Persist(ctx, result, ProcessRequest{Content: "hi", Kind: domain.ContentText}, time.Millisecond)

	require.NotEmpty(t, outcome.DocumentID)
	assert.Empty(t, outcome.TaskIDs)

	doc, err := env.docs.FindByID(ctx, outcome.DocumentID)
	require.NoError(t, err)
	assert.Empty(t, doc.ExtractedTaskIDs)

	tasks, total, err := env.tasks.List(ctx, domain.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Zero(t, total)
}

func TestPersistNormalizesMailAndTodoFields(t *testing.T) {
	env := newPersistEnv(t)
	ctx := context.Background()

	result := &domain.ExtractionResult{
		MailDrafts: ptr([]domain.MailDraftDraft{
			{Subject: "Status update", Body: "Hello", Tone: "shouty", Category: "spam"},
		}),
		TodoItems: ptr([]domain.TodoDraft{
			{Text: "Book room", Priority: "nonsense"},
		}),
	}
	outcome := env.persister.Persist(ctx, result, ProcessRequest{Content: "x", Kind: domain.ContentText}, time.Millisecond)
	assert.Equal(t, domain.LogStatusSuccess, outcome.Status)

	mails, _, err := env.mails.List(ctx, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, mails, 1)
	assert.Equal(t, domain.ToneProfessional, mails[0].Tone)
	assert.Equal(t, domain.MailCategoryGeneral, mails[0].Category)
	assert.Equal(t, domain.MailStatusDraft, mails[0].Status)
	assert.False(t, mails[0].GeneratedAt.IsZero())
	assert.Nil(t, mails[0].SentAt)

	todos, _, err := env.todos.List(ctx, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, domain.PriorityMedium, todos[0].Priority)
	assert.False(t, todos[0].Completed)
}

func TestPersistTruncatesContentPreview(t *testing.T) {
	env := newPersistEnv(t)
	ctx := context.Background()

	content := strings.Repeat("a", maxContentPreview+1000)
	outcome := env.persister.Persist(ctx, &domain.ExtractionResult{}, ProcessRequest{Content: content, Kind: domain.ContentText}, time.Millisecond)

	doc, err := env.docs.FindByID(ctx, outcome.DocumentID)
	require.NoError(t, err)
	assert.Len(t, doc.ContentPreview, maxContentPreview)
}

func TestPersistTruncatesOnRuneBoundary(t *testing.T) {
	env := newPersistEnv(t)
	ctx := context.Background()

	// a two-byte rune straddles the cutoff; the preview must stop short of
	// it rather than keep half the encoding
	content := strings.Repeat("a", maxContentPreview-1) + strings.Repeat("é", 600)
	outcome := env.persister.Persist(ctx, &domain.ExtractionResult{}, ProcessRequest{Content: content, Kind: domain.ContentText}, time.Millisecond)

	doc, err := env.docs.FindByID(ctx, outcome.DocumentID)
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(doc.ContentPreview))
	assert.LessOrEqual(t, len(doc.ContentPreview), maxContentPreview)
	assert.Equal(t, maxContentPreview-1, len(doc.ContentPreview))
}
