package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"docflow-backend/internal/domain"
	"docflow-backend/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stage markers: each prompt builder opens with a distinctive instruction, so
// the scripted generator can tell the stages apart without parsing prompts.
const (
	markIntent   = "intake classifier"
	markTasks    = "actionable TASKS"
	markCalendar = "CALENDAR EVENTS"
	markMails    = "drafts EMAILS"
	markTodos    = "TODO items"
	markSummary  = "Summarize the following"
	markMetadata = "descriptive metadata"
)

// scriptedGenerator answers each stage with a canned reply and counts calls
type scriptedGenerator struct {
	mu      sync.Mutex
	replies map[string]string
	errs    map[string]error
	calls   map[string]int
	media   map[string]bool
}

func newScriptedGenerator() *scriptedGenerator {
	return &scriptedGenerator{
		replies: map[string]string{
			markIntent:   `{"intent": "meeting", "confidence": 0.9, "targets": ["calendar", "actions"]}`,
			markTasks:    `{"tasks": [{"id": "t1", "title": "Prepare slides"}, {"id": "t2", "title": "Send invite", "dependencies": ["t1"]}]}`,
			markCalendar: `{"events": [{"title": "Quarterly review", "startDate": "2026-09-03", "startTime": "10:00"}]}`,
			markMails:    `{"mails": [{"subject": "Re: review", "body": "Hello"}]}`,
			markTodos:    `{"todos": [{"text": "Book room"}]}`,
			markSummary:  `{"summary": "A quarterly review meeting is planned."}`,
			markMetadata: `{"language": "en", "category": "meeting", "keywords": ["review"], "sentiment": "neutral", "urgency": "medium"}`,
		},
		errs:  map[string]error{},
		calls: map[string]int{},
		media: map[string]bool{},
	}
}

func (g *scriptedGenerator) Generate(ctx context.Context, parts []ai.Part, temperature float64) (string, error) {
	var prompt strings.Builder
	hasMedia := false
	for _, p := range parts {
		prompt.WriteString(p.Text)
		if p.MimeType != "" {
			hasMedia = true
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for marker, reply := range g.replies {
		if strings.Contains(prompt.String(), marker) {
			g.calls[marker]++
			g.media[marker] = hasMedia
			if err := g.errs[marker]; err != nil {
				return "", err
			}
			return reply, nil
		}
	}
	return "", fmt.Errorf("unexpected prompt: %.80s", prompt.String())
}

func (g *scriptedGenerator) totalCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, c := range g.calls {
		n += c
	}
	return n
}

func textRequest(content string) ProcessRequest {
	return ProcessRequest{
		Content:         content,
		Kind:            domain.ContentText,
		Provider:        "gemini",
		ExtractTasks:    true,
		GenerateSummary: true,
		ExtractMetadata: true,
	}
}

func TestProcessTextRunsTargetedStages(t *testing.T) {
	gen := newScriptedGenerator()
	svc := NewPipelineService(gen, gen, nil)

	outcome, err := svc.Process(context.Background(), textRequest("Team meeting on Thursday to review Q3."))
	require.NoError(t, err)

	result := outcome.Result
	require.NotNil(t, result.Intent)
	assert.Equal(t, domain.IntentMeeting, result.Intent.Intent)

	// calendar was targeted, mails and todos were not
	require.NotNil(t, result.CalendarEvents)
	assert.Len(t, *result.CalendarEvents, 1)
	assert.Nil(t, result.MailDrafts)
	assert.Nil(t, result.TodoItems)
	assert.Equal(t, 0, gen.calls[markMails])
	assert.Equal(t, 0, gen.calls[markTodos])

	// unconditional stages always run
	require.NotNil(t, result.Tasks)
	assert.Len(t, *result.Tasks, 2)
	require.NotNil(t, result.Summary)
	assert.Equal(t, "A quarterly review meeting is planned.", *result.Summary)
	require.NotNil(t, result.Metadata)
	assert.Equal(t, "en", result.Metadata.Language)

	assert.Equal(t, "gemini", result.Provider)
	assert.False(t, result.ProcessingTimestamp.IsZero())

	// no persister wired, so no document id
	assert.Empty(t, outcome.DocumentID)
}

func TestProcessMeetingWithEmailRequest(t *testing.T) {
	gen := newScriptedGenerator()
	gen.replies[markIntent] = `{"intent": "meeting", "confidence": 0.85, "targets": ["calendar", "mails", "actions"]}`
	gen.replies[markCalendar] = `{"events": [{"title": "Acme Corp meeting", "startDate": "2026-09-08", "startTime": "15:00"}]}`
	gen.replies[markMails] = `{"mails": [{"recipient": "acme", "subject": "Confirmation", "body": "Confirming our meeting.", "category": "meeting_invitation"}]}`
	svc := NewPipelineService(gen, gen, nil)

	outcome, err := svc.Process(context.Background(),
		textRequest("Meeting with Acme Corp next Tuesday at 3pm to discuss Q4 budget. Please send them a confirmation email."))
	require.NoError(t, err)

	result := outcome.Result
	require.NotNil(t, result.CalendarEvents)
	require.Len(t, *result.CalendarEvents, 1)
	assert.NotEmpty(t, (*result.CalendarEvents)[0].StartDate)

	require.NotNil(t, result.MailDrafts)
	require.Len(t, *result.MailDrafts, 1)
	assert.Equal(t, "meeting_invitation", (*result.MailDrafts)[0].Category)

	// todos were not targeted
	assert.Nil(t, result.TodoItems)
}

func TestProcessStageFailureIsIsolated(t *testing.T) {
	gen := newScriptedGenerator()
	gen.errs[markCalendar] = errors.New("provider timeout")
	svc := NewPipelineService(gen, gen, nil)

	outcome, err := svc.Process(context.Background(), textRequest("Meeting Thursday."))
	require.NoError(t, err)

	// the failed stage leaves its slot empty, siblings are unaffected
	assert.Nil(t, outcome.Result.CalendarEvents)
	require.NotNil(t, outcome.Result.Tasks)
	require.NotNil(t, outcome.Result.Summary)
}

func TestProcessIntentFailureAbortsRequest(t *testing.T) {
	gen := newScriptedGenerator()
	gen.errs[markIntent] = errors.New("provider down")
	svc := NewPipelineService(gen, gen, nil)

	_, err := svc.Process(context.Background(), textRequest("Meeting Thursday."))
	require.Error(t, err)
	assert.Equal(t, 1, gen.totalCalls())
}

func TestProcessEmptyStageListIsNotNil(t *testing.T) {
	gen := newScriptedGenerator()
	gen.replies[markCalendar] = `{"events": []}`
	svc := NewPipelineService(gen, gen, nil)

	outcome, err := svc.Process(context.Background(), textRequest("Meeting Thursday."))
	require.NoError(t, err)

	// ran-and-found-nothing must be distinguishable from skipped
	require.NotNil(t, outcome.Result.CalendarEvents)
	assert.Empty(t, *outcome.Result.CalendarEvents)
}

func TestProcessDisabledFlagsSkipStages(t *testing.T) {
	gen := newScriptedGenerator()
	svc := NewPipelineService(gen, gen, nil)

	req := textRequest("Meeting Thursday.")
	req.ExtractTasks = false
	req.GenerateSummary = false
	req.ExtractMetadata = false

	outcome, err := svc.Process(context.Background(), req)
	require.NoError(t, err)

	assert.Nil(t, outcome.Result.Tasks)
	assert.Nil(t, outcome.Result.Summary)
	assert.Nil(t, outcome.Result.Metadata)
	assert.Equal(t, 0, gen.calls[markTasks])
	assert.Equal(t, 0, gen.calls[markSummary])
	assert.Equal(t, 0, gen.calls[markMetadata])
}

func TestProcessBlankContentRejectedBeforeAnyCall(t *testing.T) {
	gen := newScriptedGenerator()
	svc := NewPipelineService(gen, gen, nil)

	_, err := svc.Process(context.Background(), textRequest("  \n\t  "))
	require.ErrorIs(t, err, domain.ErrEmptyContent)
	assert.Equal(t, 0, gen.totalCalls())
}

func TestProcessMultimodalSkipsIntentAndRouting(t *testing.T) {
	gen := newScriptedGenerator()
	svc := NewPipelineService(newScriptedGenerator(), gen, nil)

	outcome, err := svc.Process(context.Background(), ProcessRequest{
		Kind:            domain.ContentMultimodal,
		MimeType:        "image/png",
		Media:           []byte{0x89, 0x50, 0x4e, 0x47},
		Provider:        "gemini",
		ExtractTasks:    true,
		GenerateSummary: true,
		ExtractMetadata: true,
	})
	require.NoError(t, err)

	// no intent detection and no conditional stages on the multimodal path
	assert.Nil(t, outcome.Result.Intent)
	assert.Nil(t, outcome.Result.CalendarEvents)
	assert.Equal(t, 0, gen.calls[markIntent])
	assert.Equal(t, 0, gen.calls[markCalendar])

	require.NotNil(t, outcome.Result.Tasks)
	require.NotNil(t, outcome.Result.Summary)
	require.NotNil(t, outcome.Result.Metadata)

	// every multimodal call must carry the media part
	assert.True(t, gen.media[markTasks])
	assert.True(t, gen.media[markSummary])
	assert.True(t, gen.media[markMetadata])
}

func TestProcessMultimodalUnsupportedMimeType(t *testing.T) {
	gen := newScriptedGenerator()
	svc := NewPipelineService(gen, gen, nil)

	_, err := svc.Process(context.Background(), ProcessRequest{
		Kind:     domain.ContentMultimodal,
		MimeType: "application/zip",
		Media:    []byte("PK"),
	})

	var unsupported *domain.UnsupportedMediaTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "application/zip", unsupported.MimeType)
	assert.Equal(t, 0, gen.totalCalls())
}

func TestProcessMultimodalEmptyPayload(t *testing.T) {
	gen := newScriptedGenerator()
	svc := NewPipelineService(gen, gen, nil)

	_, err := svc.Process(context.Background(), ProcessRequest{
		Kind:     domain.ContentMultimodal,
		MimeType: "application/pdf",
	})
	require.ErrorIs(t, err, domain.ErrEmptyContent)
	assert.Equal(t, 0, gen.totalCalls())
}
