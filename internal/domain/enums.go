package domain

// Priority represents an item priority level. Tasks additionally use urgent.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ParsePriority normalizes a free-form priority string, defaulting to medium.
func ParsePriority(p string) Priority {
	switch Priority(p) {
	case PriorityLow, PriorityHigh, PriorityUrgent:
		return Priority(p)
	default:
		return PriorityMedium
	}
}

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusArchived   TaskStatus = "archived"
)

// EventStatus represents the current state of a calendar event
type EventStatus string

const (
	EventStatusScheduled  EventStatus = "scheduled"
	EventStatusInProgress EventStatus = "in-progress"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusCancelled  EventStatus = "cancelled"
)

// MailStatus represents the lifecycle state of a mail draft
type MailStatus string

const (
	MailStatusDraft    MailStatus = "draft"
	MailStatusSent     MailStatus = "sent"
	MailStatusArchived MailStatus = "archived"
)

// MailTone is the writing tone requested for a generated draft
type MailTone string

const (
	ToneFormal       MailTone = "formal"
	ToneCasual       MailTone = "casual"
	ToneProfessional MailTone = "professional"
	ToneFriendly     MailTone = "friendly"
)

// ParseTone normalizes a free-form tone string, defaulting to professional.
func ParseTone(t string) MailTone {
	switch MailTone(t) {
	case ToneFormal, ToneCasual, ToneFriendly:
		return MailTone(t)
	default:
		return ToneProfessional
	}
}

// MailCategory classifies a generated mail draft
type MailCategory string

const (
	MailCategorySupport    MailCategory = "customer_support"
	MailCategoryUpdate     MailCategory = "project_update"
	MailCategoryInvitation MailCategory = "meeting_invitation"
	MailCategoryGeneral    MailCategory = "general"
)

// ParseMailCategory normalizes a free-form category string, defaulting to general.
func ParseMailCategory(c string) MailCategory {
	switch MailCategory(c) {
	case MailCategorySupport, MailCategoryUpdate, MailCategoryInvitation:
		return MailCategory(c)
	default:
		return MailCategoryGeneral
	}
}

// DocumentStatus tracks a document through the extraction pipeline
type DocumentStatus string

const (
	DocumentStatusPending    DocumentStatus = "pending"
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusCompleted  DocumentStatus = "completed"
	DocumentStatusFailed     DocumentStatus = "failed"
)

// ContentKind is the declared shape of an ingestion request
type ContentKind string

const (
	ContentText       ContentKind = "text"
	ContentFile       ContentKind = "file"
	ContentMultimodal ContentKind = "multimodal"
)

// LogStatus summarizes one pipeline run in the processing log
type LogStatus string

const (
	LogStatusSuccess LogStatus = "success"
	LogStatusFailed  LogStatus = "failed"
	LogStatusPartial LogStatus = "partial"
)

// IntentCategory is the closed set of document intents the classifier may return
type IntentCategory string

const (
	IntentMeeting       IntentCategory = "meeting"
	IntentSupport       IntentCategory = "customer_support"
	IntentPersonalTask  IntentCategory = "personal_task"
	IntentMeetingNotes  IntentCategory = "meeting_notes"
	IntentSendReport    IntentCategory = "send_report"
	IntentReminder      IntentCategory = "reminder"
	IntentSupportDocs   IntentCategory = "support_documentation"
)

// RoutingTarget selects which conditional extraction stages run for a document
type RoutingTarget string

const (
	TargetActions  RoutingTarget = "actions"
	TargetCalendar RoutingTarget = "calendar"
	TargetMails    RoutingTarget = "mails"
	TargetTodos    RoutingTarget = "todos"
)
