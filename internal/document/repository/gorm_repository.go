package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"docflow-backend/internal/domain"

	"gorm.io/gorm"
)

type gormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GORM-based DocumentRepository
func NewGormDocumentRepository(db *gorm.DB) DocumentRepository {
	return &gormDocumentRepository{db: db}
}

func (r *gormDocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	if doc.ID == "" {
		doc.ID = domain.NewID("doc")
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *gormDocumentRepository) FindByID(ctx context.Context, id string) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *gormDocumentRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Document, int64, error) {
	filter = filter.Bounded()

	var docs []*domain.Document
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Document{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Skip).Find(&docs).Error
	return docs, total, err
}

func (r *gormDocumentRepository) Update(ctx context.Context, doc *domain.Document) error {
	doc.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(doc).Error
}

// UpdateTaskIDs attaches the extracted task ids after the task batch insert.
// This is a separate write from the document insert; a crash between the two
// leaves the link list stale while the tasks remain individually addressable.
func (r *gormDocumentRepository) UpdateTaskIDs(ctx context.Context, id string, taskIDs []string) error {
	doc, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	doc.ExtractedTaskIDs = taskIDs
	doc.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(doc).Error
}

func (r *gormDocumentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *gormDocumentRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Document, error) {
	var docs []*domain.Document
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).Where("LOWER(file_name) LIKE ? OR LOWER(content_preview) LIKE ? OR LOWER(summary) LIKE ?", pattern, pattern, pattern).
		Limit(limit).Find(&docs).Error
	return docs, err
}

type gormProcessingLogRepository struct {
	db *gorm.DB
}

// NewGormProcessingLogRepository creates a new GORM-based ProcessingLogRepository
func NewGormProcessingLogRepository(db *gorm.DB) ProcessingLogRepository {
	return &gormProcessingLogRepository{db: db}
}

func (r *gormProcessingLogRepository) Create(ctx context.Context, entry *domain.ProcessingLog) error {
	entry.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *gormProcessingLogRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.ProcessingLog, int64, error) {
	filter = filter.Bounded()

	var entries []*domain.ProcessingLog
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.ProcessingLog{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Skip).Find(&entries).Error
	return entries, total, err
}

type gormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GORM-based ActivityRepository
func NewGormActivityRepository(db *gorm.DB) ActivityRepository {
	return &gormActivityRepository{db: db}
}

func (r *gormActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if activity.ID == "" {
		activity.ID = domain.NewID("activity")
	}
	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *gormActivityRepository) FindByID(ctx context.Context, id string) (*domain.Activity, error) {
	var activity domain.Activity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (r *gormActivityRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Activity, int64, error) {
	filter = filter.Bounded()

	var activities []*domain.Activity
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Activity{})
	if filter.Category != "" {
		query = query.Where("type = ?", filter.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Skip).Find(&activities).Error
	return activities, total, err
}

func (r *gormActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	activity.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *gormActivityRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Activity{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
