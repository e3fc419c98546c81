package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"docflow-backend/internal/domain"

	"gorm.io/gorm"
)

type gormMailRepository struct {
	db *gorm.DB
}

// NewGormMailRepository creates a new GORM-based MailRepository
func NewGormMailRepository(db *gorm.DB) MailRepository {
	return &gormMailRepository{db: db}
}

func (r *gormMailRepository) Create(ctx context.Context, draft *domain.MailDraft) error {
	if draft.ID == "" {
		draft.ID = domain.NewID("mail")
	}
	now := time.Now()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.GeneratedAt.IsZero() {
		draft.GeneratedAt = now
	}
	return r.db.WithContext(ctx).Create(draft).Error
}

func (r *gormMailRepository) CreateBatch(ctx context.Context, drafts []*domain.MailDraft) error {
	if len(drafts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(drafts).Error
}

func (r *gormMailRepository) FindByID(ctx context.Context, id string) (*domain.MailDraft, error) {
	var draft domain.MailDraft
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&draft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &draft, nil
}

func (r *gormMailRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.MailDraft, int64, error) {
	filter = filter.Bounded()

	var drafts []*domain.MailDraft
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.MailDraft{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Skip).Find(&drafts).Error
	return drafts, total, err
}

func (r *gormMailRepository) Update(ctx context.Context, draft *domain.MailDraft) error {
	draft.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(draft).Error
}

func (r *gormMailRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.MailDraft{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *gormMailRepository) Search(ctx context.Context, query string, limit int) ([]*domain.MailDraft, error) {
	var drafts []*domain.MailDraft
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).Where("LOWER(subject) LIKE ? OR LOWER(body) LIKE ? OR LOWER(recipient) LIKE ?", pattern, pattern, pattern).
		Limit(limit).Find(&drafts).Error
	return drafts, err
}
