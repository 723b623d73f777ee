package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

type ClientHandler struct {
	clientService    *service.ClientService
	migrationService *service.MigrationService
	logger           *zap.Logger
}

func NewClientHandler(clientService *service.ClientService, migrationService *service.MigrationService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		clientService:    clientService,
		migrationService: migrationService,
		logger:           logger,
	}
}

// List godoc
// @Summary List clients
// @Description Get all tenants with their derived user and project counts
// @Tags Clients
// @Produce json
// @Success 200 {object} domain.ClientListResponse
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.clientService.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Create godoc
// @Summary Create a client
// @Description Register a new tenant; only the name is required
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body domain.CreateClientRequest true "Client details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateClientRequest
	if err := decodeBody(r, &req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, ve)
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	clientID, err := h.clientService.Create(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"clientId": clientID})
}

// Migrate godoc
// @Summary Run the RBAC migration
// @Description Migrate legacy documents into the fixed RBAC client and project. Safe to re-run; the backend deduplicates.
// @Tags Clients
// @Produce json
// @Success 200 {object} domain.MigrationResult
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /admin/migrate-to-rbac [post]
func (h *ClientHandler) Migrate(w http.ResponseWriter, r *http.Request) {
	result, err := h.migrationService.Run(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
