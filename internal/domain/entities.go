package domain

import "time"

// DocumentMetadata is the AI-extracted descriptive metadata embedded in a Document
type DocumentMetadata struct {
	Language  string   `json:"language,omitempty"`
	Category  string   `json:"category,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	Sentiment string   `json:"sentiment,omitempty"`
	Urgency   string   `json:"urgency,omitempty"`
}

// Document records one ingestion request. The raw content is truncated to a
// bounded prefix; the full content is never retained.
type Document struct {
	ID               string            `json:"id" gorm:"primaryKey"`
	FileName         string            `json:"fileName,omitempty"`
	ContentKind      ContentKind       `json:"contentKind" gorm:"index"`
	ContentPreview   string            `json:"contentPreview,omitempty"`
	Summary          string            `json:"summary,omitempty"`
	Metadata         *DocumentMetadata `json:"metadata,omitempty" gorm:"serializer:json"`
	ExtractedTaskIDs []string          `json:"extractedTaskIds,omitempty" gorm:"serializer:json"`
	Status           DocumentStatus    `json:"status" gorm:"index;default:pending"`
	ProcessingTimeMs int64             `json:"processingTimeMs,omitempty"`
	Provider         string            `json:"provider,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// Task is an actionable item extracted from a document or created manually.
// Dependencies holds the model-assigned batch-local ids of prerequisite tasks;
// they are opaque strings and are not guaranteed globally unique.
type Task struct {
	ID               string     `json:"id" gorm:"primaryKey"`
	Title            string     `json:"title" gorm:"not null"`
	Description      string     `json:"description,omitempty"`
	Priority         Priority   `json:"priority" gorm:"index;default:medium"`
	Category         string     `json:"category,omitempty" gorm:"index"`
	EstimatedTime    string     `json:"estimatedTime,omitempty"`
	Dependencies     []string   `json:"dependencies,omitempty" gorm:"serializer:json"`
	Tags             []string   `json:"tags,omitempty" gorm:"serializer:json"`
	Status           TaskStatus `json:"status" gorm:"index;default:pending"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	SourceDocumentID string     `json:"sourceDocumentId,omitempty" gorm:"index"`
	Confidence       *float64   `json:"confidence,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// CalendarEvent is a scheduled item extracted from a document or created directly.
// Dates and times are kept as the strings the model produced (ISO date, HH:MM).
type CalendarEvent struct {
	ID               string      `json:"id" gorm:"primaryKey"`
	Title            string      `json:"title" gorm:"not null"`
	Description      string      `json:"description,omitempty"`
	StartDate        string      `json:"startDate" gorm:"not null"`
	StartTime        string      `json:"startTime,omitempty"`
	EndDate          string      `json:"endDate,omitempty"`
	EndTime          string      `json:"endTime,omitempty"`
	Location         string      `json:"location,omitempty"`
	Attendees        []string    `json:"attendees,omitempty" gorm:"serializer:json"`
	Priority         Priority    `json:"priority" gorm:"default:medium"`
	Status           EventStatus `json:"status" gorm:"index;default:scheduled"`
	Reminders        []string    `json:"reminders,omitempty" gorm:"serializer:json"`
	SourceDocumentID string      `json:"sourceDocumentId,omitempty" gorm:"index"`
	SourceTaskID     string      `json:"sourceTaskId,omitempty"`
	Confidence       *float64    `json:"confidence,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// MailDraft is a generated email draft awaiting review
type MailDraft struct {
	ID               string       `json:"id" gorm:"primaryKey"`
	Recipient        string       `json:"recipient,omitempty"`
	Subject          string       `json:"subject"`
	Body             string       `json:"body"`
	Context          string       `json:"context,omitempty"`
	Tone             MailTone     `json:"tone" gorm:"default:professional"`
	Priority         Priority     `json:"priority" gorm:"default:medium"`
	Category         MailCategory `json:"category" gorm:"index;default:general"`
	Status           MailStatus   `json:"status" gorm:"index;default:draft"`
	SourceDocumentID string       `json:"sourceDocumentId,omitempty" gorm:"index"`
	SourceTaskID     string       `json:"sourceTaskId,omitempty"`
	Confidence       *float64     `json:"confidence,omitempty"`
	GeneratedAt      time.Time    `json:"generatedAt"`
	SentAt           *time.Time   `json:"sentAt,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// Todo is a lightweight checklist item
type Todo struct {
	ID               string     `json:"id" gorm:"primaryKey"`
	Text             string     `json:"text" gorm:"not null"`
	Description      string     `json:"description,omitempty"`
	Completed        bool       `json:"completed" gorm:"index;default:false"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
	Priority         Priority   `json:"priority" gorm:"index;default:medium"`
	Category         string     `json:"category,omitempty" gorm:"index"`
	EstimatedTime    string     `json:"estimatedTime,omitempty"`
	Subtasks         []string   `json:"subtasks,omitempty" gorm:"serializer:json"`
	SourceDocumentID string     `json:"sourceDocumentId,omitempty" gorm:"index"`
	SourceTaskID     string     `json:"sourceTaskId,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// ExtractedCounts summarizes how many entities one pipeline run produced
type ExtractedCounts struct {
	Tasks          int `json:"tasks"`
	CalendarEvents int `json:"calendarEvents"`
	MailDrafts     int `json:"mailDrafts"`
	TodoItems      int `json:"todoItems"`
}

// ProcessingLog is the audit record written once per pipeline run
type ProcessingLog struct {
	ID             uint            `json:"-" gorm:"primaryKey"`
	DocumentID     string          `json:"documentId,omitempty" gorm:"index"`
	ProcessingType ContentKind     `json:"processingType"`
	Provider       string          `json:"provider"`
	DurationMs     int64           `json:"durationMs"`
	Status         LogStatus       `json:"status" gorm:"index"`
	Counts         ExtractedCounts `json:"counts" gorm:"serializer:json"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// Activity is the user-facing log of one end-to-end processing interaction,
// written by the dashboard rather than the pipeline.
type Activity struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	Type      string         `json:"type" gorm:"index"`
	Title     string         `json:"title"`
	ItemCount int            `json:"itemCount"`
	Prompt    string         `json:"prompt,omitempty"`
	Mode      string         `json:"mode,omitempty"`
	Files     []string       `json:"files,omitempty" gorm:"serializer:json"`
	Results   map[string]any `json:"results,omitempty" gorm:"serializer:json"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
