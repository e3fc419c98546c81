package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"docflow-backend/internal/domain"
	"docflow-backend/pkg/ai"
	"docflow-backend/pkg/jsonx"
)

// ProcessRequest is one ingestion request after transport decoding
type ProcessRequest struct {
	Content  string
	FileName string
	Kind     domain.ContentKind
	MimeType string
	Media    []byte

	// Provider is the label the caller configured; fallback may substitute
	// the secondary provider transparently without changing it.
	Provider string

	ExtractTasks    bool
	GenerateSummary bool
	ExtractMetadata bool
}

// ProcessOutcome is the pipeline's answer: the aggregate extraction result
// plus whatever persistence managed to record.
type ProcessOutcome struct {
	Result           *domain.ExtractionResult
	DocumentID       string
	ExtractedTaskIDs []string
	ProcessingTime   time.Duration
}

// PipelineService runs the multi-stage extraction pipeline: intent detection,
// conditional fan-out into typed extraction calls, unconditional summary and
// metadata calls, aggregation, then best-effort persistence.
type PipelineService struct {
	text      ai.Generator // fallback-orchestrated, used for text and file input
	media     ai.Generator // multimodal-capable provider, called directly (no fallback)
	persister *Persister   // nil disables persistence
	now       func() time.Time
}

// NewPipelineService creates the pipeline. text is the fallback-wrapped
// client; media is the single multimodal-capable provider.
func NewPipelineService(text, media ai.Generator, persister *Persister) *PipelineService {
	return &PipelineService{
		text:      text,
		media:     media,
		persister: persister,
		now:       time.Now,
	}
}

// Process runs the whole pipeline for one request. Validation and intent
// failures abort the request; every other stage is failure-isolated, so the
// caller always gets whatever succeeded.
func (s *PipelineService) Process(ctx context.Context, req ProcessRequest) (*ProcessOutcome, error) {
	start := s.now()

	if err := s.validate(req); err != nil {
		return nil, err
	}

	var result *domain.ExtractionResult
	var err error
	if req.Kind == domain.ContentMultimodal {
		result, err = s.runMultimodal(ctx, req)
	} else {
		result, err = s.runText(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	result.ProcessingTimestamp = s.now()
	result.Provider = req.Provider

	outcome := &ProcessOutcome{Result: result}
	if s.persister != nil {
		persisted := s.persister.Persist(ctx, result, req, s.now().Sub(start))
		outcome.DocumentID = persisted.DocumentID
		outcome.ExtractedTaskIDs = persisted.TaskIDs
	}

	outcome.ProcessingTime = s.now().Sub(start)
	return outcome, nil
}

func (s *PipelineService) validate(req ProcessRequest) error {
	switch req.Kind {
	case domain.ContentMultimodal:
		if !domain.SupportedMimeTypes[req.MimeType] {
			return &domain.UnsupportedMediaTypeError{MimeType: req.MimeType}
		}
		if len(req.Media) == 0 {
			return domain.ErrEmptyContent
		}
	default:
		if isBlank(req.Content) {
			return domain.ErrEmptyContent
		}
	}
	return nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// runText handles text and file input: intent detection is load-bearing and
// aborts the request on failure, everything after it is isolated per stage.
func (s *PipelineService) runText(ctx context.Context, req ProcessRequest) (*domain.ExtractionResult, error) {
	var intent domain.IntentResult
	if err := s.extract(ctx, s.text, []ai.Part{ai.TextPart(intentPrompt(req.Content))}, ai.TempIntent, &intent); err != nil {
		return nil, err
	}
	log.Printf("[Pipeline] intent=%s confidence=%.2f targets=%v", intent.Intent, intent.Confidence, intent.Targets)

	result := &domain.ExtractionResult{Intent: &intent}
	parts := func(prompt string) []ai.Part {
		return []ai.Part{ai.TextPart(prompt)}
	}
	s.runStages(ctx, result, s.stagePlan(req, &intent, parts, s.text))
	return result, nil
}

// runMultimodal skips intent detection entirely and issues every call against
// the single multimodal-capable provider; the secondary provider cannot
// handle media so there is no fallback on this path.
func (s *PipelineService) runMultimodal(ctx context.Context, req ProcessRequest) (*domain.ExtractionResult, error) {
	result := &domain.ExtractionResult{}
	parts := func(prompt string) []ai.Part {
		return []ai.Part{ai.TextPart(prompt), ai.MediaPart(req.MimeType, req.Media)}
	}

	req.Content = "the attached document"
	s.runStages(ctx, result, s.stagePlan(req, nil, parts, s.media))
	return result, nil
}

// apply mutates the aggregate result; stages return one on success so all
// writes happen under the fan-out mutex.
type apply func(*domain.ExtractionResult)

type stage struct {
	name string
	run  func(ctx context.Context) (apply, error)
}

// stagePlan assembles the conditional and unconditional extraction stages.
// Conditional stages run only for routing targets the intent selected; the
// actions target is covered by the unconditional task extraction. An empty or
// missing list in a model reply normalizes to an empty slice, never nil.
func (s *PipelineService) stagePlan(req ProcessRequest, intent *domain.IntentResult, parts func(string) []ai.Part, gen ai.Generator) []stage {
	now := s.now()
	var stages []stage

	if intent != nil && intent.HasTarget(domain.TargetCalendar) {
		stages = append(stages, stage{"calendar", func(ctx context.Context) (apply, error) {
			var reply struct {
				Events []domain.EventDraft `json:"events"`
			}
			if err := s.extract(ctx, gen, parts(calendarPrompt(now, req.Content)), ai.TempCalendar, &reply); err != nil {
				return nil, err
			}
			events := reply.Events
			if events == nil {
				events = []domain.EventDraft{}
			}
			return func(r *domain.ExtractionResult) { r.CalendarEvents = &events }, nil
		}})
	}

	if intent != nil && intent.HasTarget(domain.TargetMails) {
		stages = append(stages, stage{"mails", func(ctx context.Context) (apply, error) {
			var reply struct {
				Mails []domain.MailDraftDraft `json:"mails"`
			}
			if err := s.extract(ctx, gen, parts(mailPrompt(now, req.Content)), ai.TempMail, &reply); err != nil {
				return nil, err
			}
			mails := reply.Mails
			if mails == nil {
				mails = []domain.MailDraftDraft{}
			}
			return func(r *domain.ExtractionResult) { r.MailDrafts = &mails }, nil
		}})
	}

	if intent != nil && intent.HasTarget(domain.TargetTodos) {
		stages = append(stages, stage{"todos", func(ctx context.Context) (apply, error) {
			var reply struct {
				Todos []domain.TodoDraft `json:"todos"`
			}
			if err := s.extract(ctx, gen, parts(todoPrompt(now, req.Content)), ai.TempTodos, &reply); err != nil {
				return nil, err
			}
			todos := reply.Todos
			if todos == nil {
				todos = []domain.TodoDraft{}
			}
			return func(r *domain.ExtractionResult) { r.TodoItems = &todos }, nil
		}})
	}

	if req.ExtractTasks {
		stages = append(stages, stage{"tasks", func(ctx context.Context) (apply, error) {
			var reply struct {
				Tasks []domain.TaskDraft `json:"tasks"`
			}
			if err := s.extract(ctx, gen, parts(taskPrompt(now, req.Content)), ai.TempTasks, &reply); err != nil {
				return nil, err
			}
			tasks := reply.Tasks
			if tasks == nil {
				tasks = []domain.TaskDraft{}
			}
			return func(r *domain.ExtractionResult) { r.Tasks = &tasks }, nil
		}})
	}

	if req.GenerateSummary {
		stages = append(stages, stage{"summary", func(ctx context.Context) (apply, error) {
			var reply struct {
				Summary string `json:"summary"`
			}
			if err := s.extract(ctx, gen, parts(summaryPrompt(req.Content)), ai.TempSummary, &reply); err != nil {
				return nil, err
			}
			return func(r *domain.ExtractionResult) { r.Summary = &reply.Summary }, nil
		}})
	}

	if req.ExtractMetadata {
		stages = append(stages, stage{"metadata", func(ctx context.Context) (apply, error) {
			var meta domain.DocumentMetadata
			if err := s.extract(ctx, gen, parts(metadataPrompt(req.Content)), ai.TempMetadata, &meta); err != nil {
				return nil, err
			}
			return func(r *domain.ExtractionResult) { r.Metadata = &meta }, nil
		}})
	}

	return stages
}

// runStages fans the stages out concurrently. The calls are independent after
// intent detection, so they run in parallel; a failed stage only logs and
// leaves its result slot empty.
func (s *PipelineService) runStages(ctx context.Context, result *domain.ExtractionResult, stages []stage) {
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, st := range stages {
		wg.Add(1)
		go func(st stage) {
			defer wg.Done()
			set, err := st.run(ctx)
			if err != nil {
				log.Printf("[Pipeline] %s extraction failed, continuing without it: %v", st.name, err)
				return
			}
			mu.Lock()
			set(result)
			mu.Unlock()
		}(st)
	}
	wg.Wait()
}

// extract issues one provider call and recovers the JSON object from the
// reply. Parse failures after a successful network call are not retried; the
// fallback client only retries the network call itself.
func (s *PipelineService) extract(ctx context.Context, gen ai.Generator, parts []ai.Part, temperature float64, v any) error {
	out, err := gen.Generate(ctx, parts, temperature)
	if err != nil {
		return err
	}
	return jsonx.ExtractObject(out, v)
}
