package usecase

import (
	"context"

	"docflow-backend/internal/calendar/repository"
	"docflow-backend/internal/domain"
)

// EventUpdateRequest carries a partial update; nil fields are left untouched
type EventUpdateRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	StartDate   *string   `json:"startDate"`
	StartTime   *string   `json:"startTime"`
	EndDate     *string   `json:"endDate"`
	EndTime     *string   `json:"endTime"`
	Location    *string   `json:"location"`
	Attendees   *[]string `json:"attendees"`
	Priority    *string   `json:"priority"`
	Status      *string   `json:"status"`
	Reminders   *[]string `json:"reminders"`
}

// EventUsecase provides calendar event CRUD on top of the repository
type EventUsecase struct {
	eventRepo repository.EventRepository
}

// NewEventUsecase creates a new EventUsecase
func NewEventUsecase(eventRepo repository.EventRepository) *EventUsecase {
	return &EventUsecase{eventRepo: eventRepo}
}

func (u *EventUsecase) CreateEvent(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	event.ID = domain.NewID("event")
	if event.Status == "" {
		event.Status = domain.EventStatusScheduled
	}
	event.Priority = domain.ParsePriority(string(event.Priority))
	if err := u.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *EventUsecase) GetEvent(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	return u.eventRepo.FindByID(ctx, id)
}

func (u *EventUsecase) ListEvents(ctx context.Context, filter domain.ListFilter) ([]*domain.CalendarEvent, int64, error) {
	return u.eventRepo.List(ctx, filter)
}

func (u *EventUsecase) UpdateEvent(ctx context.Context, id string, updates EventUpdateRequest) (*domain.CalendarEvent, error) {
	event, err := u.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		event.Title = *updates.Title
	}
	if updates.Description != nil {
		event.Description = *updates.Description
	}
	if updates.StartDate != nil {
		event.StartDate = *updates.StartDate
	}
	if updates.StartTime != nil {
		event.StartTime = *updates.StartTime
	}
	if updates.EndDate != nil {
		event.EndDate = *updates.EndDate
	}
	if updates.EndTime != nil {
		event.EndTime = *updates.EndTime
	}
	if updates.Location != nil {
		event.Location = *updates.Location
	}
	if updates.Attendees != nil {
		event.Attendees = *updates.Attendees
	}
	if updates.Priority != nil {
		event.Priority = domain.ParsePriority(*updates.Priority)
	}
	if updates.Status != nil {
		event.Status = domain.EventStatus(*updates.Status)
	}
	if updates.Reminders != nil {
		event.Reminders = *updates.Reminders
	}

	if err := u.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *EventUsecase) DeleteEvent(ctx context.Context, id string) error {
	return u.eventRepo.Delete(ctx, id)
}
