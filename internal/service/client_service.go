package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/backend"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
)

// ClientService manages tenant (client) records through the backend's RBAC
// admin surface
type ClientService struct {
	backend *backend.Client
	logger  *zap.Logger
}

// NewClientService creates a new client service
func NewClientService(backendClient *backend.Client, logger *zap.Logger) *ClientService {
	return &ClientService{
		backend: backendClient,
		logger:  logger,
	}
}

// List returns all tenants with their derived counts
func (s *ClientService) List(ctx context.Context) (*domain.ClientListResponse, error) {
	clients, total, err := s.backend.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []domain.ClientWithStats{}
	}
	return &domain.ClientListResponse{
		Clients: clients,
		Total:   total,
	}, nil
}

// Create registers a new tenant and returns its ID
func (s *ClientService) Create(ctx context.Context, req domain.CreateClientRequest) (string, error) {
	clientID, err := s.backend.CreateClient(ctx, req.Name, req.Domain, req.ContactName, req.ContactEmail, req.Industry, req.Notes)
	if err != nil {
		return "", err
	}

	s.logger.Info("client created",
		zap.String("client_id", clientID),
		zap.String("name", req.Name),
	)

	return clientID, nil
}
