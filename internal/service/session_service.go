package service

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/repository"
)

// SessionService manages per-user console state: the selected project scope
// and the last-used inventory filters. Changing the selected project bumps a
// scope generation counter so that inventory responses started under the old
// scope can be detected and discarded.
type SessionService struct {
	sessionRepo *repository.SessionRepository
	logger      *zap.Logger

	mu          sync.Mutex
	generations map[string]*atomic.Uint64
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo *repository.SessionRepository, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		logger:      logger,
		generations: make(map[string]*atomic.Uint64),
	}
}

// Get returns the user's session. A user without a stored session gets a
// zero-valued one (no selected project, default filters).
func (s *SessionService) Get(ctx context.Context, userID string) (*domain.Session, error) {
	return s.sessionRepo.Get(ctx, userID)
}

// SelectProject stores the user's selected project and invalidates any
// in-flight inventory requests scoped to the previous project
func (s *SessionService) SelectProject(ctx context.Context, userID, projectID string) (*domain.Session, error) {
	session, err := s.sessionRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	session.UserID = userID
	session.SelectedProjectID = projectID
	session.UpdatedAt = time.Now()

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	gen := s.generation(userID).Add(1)
	s.logger.Info("project scope changed",
		zap.String("user_id", userID),
		zap.String("project_id", projectID),
		zap.Uint64("scope_generation", gen),
	)

	return session, nil
}

// SaveFilters persists the user's inventory filters so the next session
// resumes where they left off
func (s *SessionService) SaveFilters(ctx context.Context, userID string, filters domain.InventoryFilters) error {
	session, err := s.sessionRepo.Get(ctx, userID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(filters)
	if err != nil {
		return err
	}

	session.UserID = userID
	session.InventoryFilters = string(raw)
	session.UpdatedAt = time.Now()

	return s.sessionRepo.Save(ctx, session)
}

// Filters returns the user's stored inventory filters, or defaults when none
// were saved yet
func (s *SessionService) Filters(ctx context.Context, userID string) (domain.InventoryFilters, error) {
	session, err := s.sessionRepo.Get(ctx, userID)
	if err != nil {
		return domain.InventoryFilters{}, err
	}

	filters := domain.InventoryFilters{Page: 1, PageSize: domain.DefaultPageSize}
	if session.InventoryFilters == "" {
		return filters, nil
	}

	if err := json.Unmarshal([]byte(session.InventoryFilters), &filters); err != nil {
		// Corrupt stored filters fall back to defaults
		s.logger.Warn("discarding unreadable stored filters",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return domain.InventoryFilters{Page: 1, PageSize: domain.DefaultPageSize}, nil
	}

	return filters, nil
}

// Clear removes the user's session on logout and invalidates any in-flight
// scoped requests
func (s *SessionService) Clear(ctx context.Context, userID string) error {
	if err := s.sessionRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.generation(userID).Add(1)
	return nil
}

// ScopeGeneration returns the current project scope generation for a user.
// Callers snapshot it before a scoped backend call and compare afterwards;
// a mismatch means the scope changed mid-flight and the result is stale.
func (s *SessionService) ScopeGeneration(userID string) uint64 {
	return s.generation(userID).Load()
}

func (s *SessionService) generation(userID string) *atomic.Uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	gen, ok := s.generations[userID]
	if !ok {
		gen = &atomic.Uint64{}
		s.generations[userID] = gen
	}
	return gen
}
