package domain

import "time"

// IntentResult is the output of the intent-detection stage
type IntentResult struct {
	Intent     IntentCategory  `json:"intent"`
	Confidence float64         `json:"confidence"`
	Targets    []RoutingTarget `json:"targets"`
}

// HasTarget reports whether the intent routed to the given target
func (r *IntentResult) HasTarget(t RoutingTarget) bool {
	for _, target := range r.Targets {
		if target == t {
			return true
		}
	}
	return false
}

// TaskDraft is a task as the model emitted it, before persistence. The id is
// batch-local and assigned by the model; Dependencies reference those ids.
type TaskDraft struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Priority      string   `json:"priority,omitempty"`
	Category      string   `json:"category,omitempty"`
	EstimatedTime string   `json:"estimatedTime,omitempty"`
	Dependencies  []string `json:"dependencies,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	DueDate       string   `json:"dueDate,omitempty"`
}

// EventDraft is a calendar event as the model emitted it
type EventDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	StartDate   string   `json:"startDate"`
	StartTime   string   `json:"startTime,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	EndTime     string   `json:"endTime,omitempty"`
	Location    string   `json:"location,omitempty"`
	Attendees   []string `json:"attendees,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	Reminders   []string `json:"reminders,omitempty"`
}

// MailDraftDraft is a mail draft as the model emitted it
type MailDraftDraft struct {
	Recipient string `json:"recipient,omitempty"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Context   string `json:"context,omitempty"`
	Tone      string `json:"tone,omitempty"`
	Priority  string `json:"priority,omitempty"`
	Category  string `json:"category,omitempty"`
}

// TodoDraft is a todo item as the model emitted it
type TodoDraft struct {
	Text          string   `json:"text"`
	Description   string   `json:"description,omitempty"`
	DueDate       string   `json:"dueDate,omitempty"`
	Priority      string   `json:"priority,omitempty"`
	Category      string   `json:"category,omitempty"`
	EstimatedTime string   `json:"estimatedTime,omitempty"`
	Subtasks      []string `json:"subtasks,omitempty"`
}

// ExtractionResult aggregates whatever stages succeeded for one request.
// Every slot is optional: a nil field means the stage was skipped or failed,
// while a pointer to an empty slice means the stage ran and found nothing.
type ExtractionResult struct {
	Intent         *IntentResult     `json:"intent,omitempty"`
	Tasks          *[]TaskDraft      `json:"tasks,omitempty"`
	Summary        *string           `json:"summary,omitempty"`
	Metadata       *DocumentMetadata `json:"metadata,omitempty"`
	CalendarEvents *[]EventDraft     `json:"calendarEvents,omitempty"`
	MailDrafts     *[]MailDraftDraft `json:"mailDrafts,omitempty"`
	TodoItems      *[]TodoDraft      `json:"todoItems,omitempty"`

	ProcessingTimestamp time.Time `json:"processingTimestamp"`
	Provider            string    `json:"provider"`
}

// Confidence returns the intent confidence when available, for stamping onto
// persisted entities.
func (r *ExtractionResult) ConfidencePtr() *float64 {
	if r.Intent == nil {
		return nil
	}
	c := r.Intent.Confidence
	return &c
}
