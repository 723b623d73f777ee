package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/backend"
	"github.com/bsimkins11/project-agent-admin/internal/config"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
)

// MigrationService runs the one-shot migration of legacy documents into the
// RBAC tenant model. The target client and project are fixed in
// configuration; the console always posts those values and the backend
// deduplicates re-invocations.
type MigrationService struct {
	backend *backend.Client
	cfg     *config.MigrationConfig
	logger  *zap.Logger
}

// NewMigrationService creates a new migration service
func NewMigrationService(backendClient *backend.Client, cfg *config.MigrationConfig, logger *zap.Logger) *MigrationService {
	return &MigrationService{
		backend: backendClient,
		cfg:     cfg,
		logger:  logger,
	}
}

// Run triggers the migration against the configured targets
func (s *MigrationService) Run(ctx context.Context) (*domain.MigrationResult, error) {
	s.logger.Info("starting RBAC migration",
		zap.String("client_id", s.cfg.ClientID),
		zap.String("project_id", s.cfg.ProjectID),
	)

	result, err := s.backend.MigrateToRBAC(ctx, s.cfg.ClientID, s.cfg.ProjectID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("RBAC migration finished",
		zap.Int("migrated", result.Migrated),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}
