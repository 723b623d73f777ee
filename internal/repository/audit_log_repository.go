package repository

import (
	"context"
	"time"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogRepository persists the console's local audit trail
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create inserts an audit entry
func (r *AuditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// AuditLogFilters narrows audit log queries
type AuditLogFilters struct {
	Action     domain.AuditAction
	EntityType string
	EntityID   string
	UserID     string
	Since      *time.Time
}

// List returns audit entries newest first, with a paging window
func (r *AuditLogRepository) List(ctx context.Context, filters AuditLogFilters, offset, limit int) ([]domain.AuditLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.AuditLog{})

	if filters.Action != "" {
		query = query.Where("action = ?", filters.Action)
	}
	if filters.EntityType != "" {
		query = query.Where("entity_type = ?", filters.EntityType)
	}
	if filters.EntityID != "" {
		query = query.Where("entity_id = ?", filters.EntityID)
	}
	if filters.UserID != "" {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.Since != nil {
		query = query.Where("created_at >= ?", *filters.Since)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []domain.AuditLog
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
