package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/backend"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
)

// InventoryService owns the inventory browsing state: filters, paging and the
// project scope. Listing is always scoped to the session's selected project,
// and results fetched under a scope that changed mid-flight are discarded.
type InventoryService struct {
	backend  *backend.Client
	sessions *SessionService
	logger   *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(backendClient *backend.Client, sessions *SessionService, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		backend:  backendClient,
		sessions: sessions,
		logger:   logger,
	}
}

// List fetches one inventory page for the user. The incoming filters are
// reconciled against the stored ones first: changing anything but the page
// number resets the page to 1. The reconciled filters are persisted so the
// next request starts from them.
func (s *InventoryService) List(ctx context.Context, userID string, requested domain.InventoryFilters) (*domain.InventoryPage, error) {
	prev, err := s.sessions.Filters(ctx, userID)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The project scope comes from the session, never from the caller.
	// Applying it before reconciling means a project switch counts as a
	// filter change and resets the page, while plain page navigation under
	// a selected project does not.
	requested.ProjectID = session.SelectedProjectID

	filters := domain.ResolvePage(prev, requested)

	// Snapshot the scope generation so a project switch during the backend
	// call invalidates this result
	gen := s.sessions.ScopeGeneration(userID)

	result, err := s.backend.ListInventory(ctx, filters)
	if err != nil {
		return nil, err
	}

	if s.sessions.ScopeGeneration(userID) != gen {
		s.logger.Debug("discarding inventory page from superseded scope",
			zap.String("user_id", userID),
			zap.String("project_id", filters.ProjectID),
		)
		return nil, ErrStaleScope
	}

	if err := s.sessions.SaveFilters(ctx, userID, filters); err != nil {
		s.logger.Warn("failed to persist inventory filters",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}

	page := &domain.InventoryPage{
		Items: make([]domain.InventoryItemDTO, 0, len(result.Items)),
		Pagination: domain.Pagination{
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: result.TotalPages,
		},
		ProjectID: filters.ProjectID,
	}

	for _, item := range result.Items {
		page.Items = append(page.Items, domain.InventoryItemDTO{
			InventoryItem:    item,
			AllowedActions:   domain.AllowedActions(item.Status),
			AllowsManagement: domain.AllowsManagement(item.Status),
		})
	}

	return page, nil
}

// Filters returns the user's current stored filters
func (s *InventoryService) Filters(ctx context.Context, userID string) (domain.InventoryFilters, error) {
	return s.sessions.Filters(ctx, userID)
}
