package usecase

import (
	"context"
	"time"

	"docflow-backend/internal/domain"
	"docflow-backend/internal/mail/repository"
)

// MailUpdateRequest carries a partial update; nil fields are left untouched
type MailUpdateRequest struct {
	Recipient *string `json:"recipient"`
	Subject   *string `json:"subject"`
	Body      *string `json:"body"`
	Context   *string `json:"context"`
	Tone      *string `json:"tone"`
	Priority  *string `json:"priority"`
	Category  *string `json:"category"`
	Status    *string `json:"status"`
}

// MailUsecase provides mail draft CRUD on top of the repository
type MailUsecase struct {
	mailRepo repository.MailRepository
}

// NewMailUsecase creates a new MailUsecase
func NewMailUsecase(mailRepo repository.MailRepository) *MailUsecase {
	return &MailUsecase{mailRepo: mailRepo}
}

func (u *MailUsecase) CreateDraft(ctx context.Context, draft *domain.MailDraft) (*domain.MailDraft, error) {
	draft.ID = domain.NewID("mail")
	if draft.Status == "" {
		draft.Status = domain.MailStatusDraft
	}
	if draft.Tone == "" {
		draft.Tone = domain.ToneProfessional
	}
	if draft.Category == "" {
		draft.Category = domain.MailCategoryGeneral
	}
	draft.Priority = domain.ParsePriority(string(draft.Priority))
	if err := u.mailRepo.Create(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (u *MailUsecase) GetDraft(ctx context.Context, id string) (*domain.MailDraft, error) {
	return u.mailRepo.FindByID(ctx, id)
}

func (u *MailUsecase) ListDrafts(ctx context.Context, filter domain.ListFilter) ([]*domain.MailDraft, int64, error) {
	return u.mailRepo.List(ctx, filter)
}

// UpdateDraft merges the non-nil fields of the request into the stored draft.
// Moving the status to sent stamps sentAt.
func (u *MailUsecase) UpdateDraft(ctx context.Context, id string, updates MailUpdateRequest) (*domain.MailDraft, error) {
	draft, err := u.mailRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Recipient != nil {
		draft.Recipient = *updates.Recipient
	}
	if updates.Subject != nil {
		draft.Subject = *updates.Subject
	}
	if updates.Body != nil {
		draft.Body = *updates.Body
	}
	if updates.Context != nil {
		draft.Context = *updates.Context
	}
	if updates.Tone != nil {
		draft.Tone = domain.MailTone(*updates.Tone)
	}
	if updates.Priority != nil {
		draft.Priority = domain.ParsePriority(*updates.Priority)
	}
	if updates.Category != nil {
		draft.Category = domain.MailCategory(*updates.Category)
	}
	if updates.Status != nil {
		draft.Status = domain.MailStatus(*updates.Status)
		if draft.Status == domain.MailStatusSent && draft.SentAt == nil {
			now := time.Now()
			draft.SentAt = &now
		}
	}

	if err := u.mailRepo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (u *MailUsecase) DeleteDraft(ctx context.Context, id string) error {
	return u.mailRepo.Delete(ctx, id)
}
