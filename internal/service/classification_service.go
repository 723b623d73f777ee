package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/backend"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
)

// ClassificationService serves the classification taxonomy and validates
// assignments against it. The taxonomy comes from the backend and is cached
// with a TTL; a background job refreshes it so modal opens stay fast.
type ClassificationService struct {
	backend *backend.Client
	logger  *zap.Logger
	ttl     time.Duration

	mu        sync.RWMutex
	options   *domain.ClassificationOptions
	fetchedAt time.Time
}

// NewClassificationService creates a new classification service
func NewClassificationService(backendClient *backend.Client, cacheTTL time.Duration, logger *zap.Logger) *ClassificationService {
	return &ClassificationService{
		backend: backendClient,
		logger:  logger,
		ttl:     cacheTTL,
	}
}

// Options returns the taxonomy, serving from cache while fresh
func (s *ClassificationService) Options(ctx context.Context) (*domain.ClassificationOptions, error) {
	s.mu.RLock()
	if s.options != nil && time.Since(s.fetchedAt) < s.ttl {
		opts := s.options
		s.mu.RUnlock()
		return opts, nil
	}
	s.mu.RUnlock()

	return s.Refresh(ctx)
}

// Refresh fetches the taxonomy from the backend and replaces the cache.
// On failure a stale cached copy is served rather than nothing.
func (s *ClassificationService) Refresh(ctx context.Context) (*domain.ClassificationOptions, error) {
	opts, err := s.backend.GetClassificationOptions(ctx)
	if err != nil {
		s.mu.RLock()
		stale := s.options
		s.mu.RUnlock()
		if stale != nil {
			s.logger.Warn("taxonomy refresh failed, serving stale copy", zap.Error(err))
			return stale, nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.options = opts
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	s.logger.Debug("classification taxonomy refreshed",
		zap.Int("doc_types", len(opts.DocTypes)),
	)

	return opts, nil
}

// Assign validates a cascading classification against the taxonomy and
// forwards it. Empty category and subcategory are omitted from the backend
// call, never sent as empty strings.
func (s *ClassificationService) Assign(ctx context.Context, docID string, req domain.AssignClassificationRequest) error {
	opts, err := s.Options(ctx)
	if err != nil {
		return err
	}

	if !hasOption(opts.DocTypes, req.DocType) {
		return fmt.Errorf("%w: %s", ErrUnknownDocType, req.DocType)
	}

	if req.Category != "" && !opts.HasCategory(req.DocType, req.Category) {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, req.Category)
	}

	// A subcategory without its parent category is meaningless
	if req.Subcategory != "" {
		if req.Category == "" {
			return fmt.Errorf("%w: subcategory requires a category", ErrInvalidInput)
		}
		if !opts.HasSubcategory(req.Category, req.Subcategory) {
			return fmt.Errorf("%w: %s", ErrUnknownSubcategory, req.Subcategory)
		}
	}

	return s.backend.AssignClassification(ctx, docID, req.DocType, req.Category, req.Subcategory)
}

// AssignCategory validates a fixed-enum category and forwards it. Used by the
// simple classification flow that skips the cascading taxonomy.
func (s *ClassificationService) AssignCategory(ctx context.Context, docID, category string) error {
	if !domain.IsFixedCategory(category) {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	return s.backend.AssignCategory(ctx, docID, category)
}

func hasOption(opts []domain.ClassificationOption, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
