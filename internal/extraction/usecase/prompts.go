package usecase

import (
	"fmt"
	"time"
)

// dateContext renders the literal date anchors injected into every
// date-bearing prompt, so relative phrases like "next week" or "the 15th"
// resolve against a fixed anchor instead of model-invented context.
func dateContext(now time.Time) string {
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	nextMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, 1, 0).Format("2006-01-02")
	return fmt.Sprintf("TODAY'S DATE: %s (%s)\nTOMORROW: %s\nFIRST DAY OF NEXT MONTH: %s",
		today, now.Weekday(), tomorrow, nextMonth)
}

func intentPrompt(content string) string {
	return fmt.Sprintf(`You are a document intake classifier. Classify the intent of the following content and decide which extraction stages should run.

RULES:
1. "intent" must be exactly one of: meeting, customer_support, personal_task, meeting_notes, send_report, reminder, support_documentation
2. "confidence" is a number between 0 and 1
3. "targets" is an array drawn from: actions, calendar, mails, todos. Include "calendar" when the content mentions meetings, appointments or dates to schedule; "mails" when an email should be written or answered; "todos" for checklist-style items; "actions" for general actionable work.

Return ONLY a JSON object, no other text:
{"intent": "...", "confidence": 0.0, "targets": ["..."]}

CONTENT:
%s`, content)
}

func taskPrompt(now time.Time, content string) string {
	return fmt.Sprintf(`You are an assistant that extracts actionable TASKS from documents.

%s

RULES:
1. Find ALL actionable items, deadlines and follow-ups
2. Each task needs: id (short unique string within this reply), title (required), description, priority (low/medium/high/urgent), category, estimatedTime, dependencies (ids of other tasks in this reply), tags, dueDate (ISO 8601 if mentioned, resolved against the dates above)
3. If there are no tasks, return an empty array

Return ONLY a JSON object, no other text:
{"tasks": [{"id": "t1", "title": "...", "description": "...", "priority": "medium", "category": "...", "estimatedTime": "", "dependencies": [], "tags": [], "dueDate": ""}]}

CONTENT:
%s`, dateContext(now), content)
}

func calendarPrompt(now time.Time, content string) string {
	return fmt.Sprintf(`You are an assistant that extracts CALENDAR EVENTS from documents.

%s

RULES:
1. Find every meeting, appointment or scheduled occasion
2. Each event needs: title (required), description, startDate (ISO 8601 date, required, resolved against the dates above), startTime (HH:MM if mentioned), endDate, endTime, location, attendees, priority (low/medium/high), reminders
3. If there are no events, return an empty array

Return ONLY a JSON object, no other text:
{"events": [{"title": "...", "startDate": "2006-01-02", "startTime": "15:00", "location": "", "attendees": [], "priority": "medium", "reminders": []}]}

CONTENT:
%s`, dateContext(now), content)
}

func mailPrompt(now time.Time, content string) string {
	return fmt.Sprintf(`You are an assistant that drafts EMAILS requested or implied by documents.

%s

RULES:
1. For each email that should be written, produce a complete draft
2. Each draft needs: recipient (if known), subject, body (full prose), context (one line on why this email exists), tone (formal/casual/professional/friendly), priority (low/medium/high), category (customer_support/project_update/meeting_invitation/general)
3. If no email is needed, return an empty array

Return ONLY a JSON object, no other text:
{"mails": [{"recipient": "", "subject": "...", "body": "...", "context": "...", "tone": "professional", "priority": "medium", "category": "general"}]}

CONTENT:
%s`, dateContext(now), content)
}

func todoPrompt(now time.Time, content string) string {
	return fmt.Sprintf(`You are an assistant that extracts lightweight TODO items from documents.

%s

RULES:
1. Find small checklist-style items, distinct from full project tasks
2. Each todo needs: text (required), description, dueDate (ISO 8601 if hinted, resolved against the dates above), priority (low/medium/high), category, estimatedTime, subtasks
3. If there are no todos, return an empty array

Return ONLY a JSON object, no other text:
{"todos": [{"text": "...", "description": "", "dueDate": "", "priority": "medium", "category": "", "estimatedTime": "", "subtasks": []}]}

CONTENT:
%s`, dateContext(now), content)
}

func summaryPrompt(content string) string {
	return fmt.Sprintf(`Summarize the following content in 2-4 sentences. Capture the main point and any decisions or deadlines.

Return ONLY a JSON object, no other text:
{"summary": "..."}

CONTENT:
%s`, content)
}

func metadataPrompt(content string) string {
	return fmt.Sprintf(`Extract descriptive metadata from the following content.

RULES:
1. language: ISO 639-1 code of the main language
2. category: one short label for the content type
3. keywords: up to 8 key terms
4. sentiment: positive, neutral or negative
5. urgency: low, medium or high

Return ONLY a JSON object, no other text:
{"language": "en", "category": "...", "keywords": [], "sentiment": "neutral", "urgency": "low"}

CONTENT:
%s`, content)
}
