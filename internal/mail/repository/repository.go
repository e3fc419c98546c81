package repository

import (
	"context"

	"docflow-backend/internal/domain"
)

// MailRepository abstracts mail draft persistence
type MailRepository interface {
	Create(ctx context.Context, draft *domain.MailDraft) error
	CreateBatch(ctx context.Context, drafts []*domain.MailDraft) error
	FindByID(ctx context.Context, id string) (*domain.MailDraft, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.MailDraft, int64, error)
	Update(ctx context.Context, draft *domain.MailDraft) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]*domain.MailDraft, error)
}
