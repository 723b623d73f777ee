package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository persists per-user console session state: the selected
// project scope and the last inventory filter snapshot
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Get loads the session for a user. A missing session is returned as a zero
// session for that user, not an error.
func (r *SessionRepository) Get(ctx context.Context, userID string) (*domain.Session, error) {
	var session domain.Session
	err := r.db.WithContext(ctx).First(&session, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.Session{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Save upserts a session row
func (r *SessionRepository) Save(ctx context.Context, session *domain.Session) error {
	session.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(session).Error
}

// Delete removes a user's session (logout)
func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Delete(&domain.Session{}, "user_id = ?", userID).Error
}
