package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/auth"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/metrics"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

// serviceName labels console metrics emitted from the handler layer
const serviceName = "admin-console"

type InventoryHandler struct {
	inventoryService *service.InventoryService
	approvalService  *service.ApprovalService
	metrics          *metrics.ConsoleMetrics
	logger           *zap.Logger
}

func NewInventoryHandler(inventoryService *service.InventoryService, approvalService *service.ApprovalService, m *metrics.ConsoleMetrics, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		approvalService:  approvalService,
		metrics:          m,
		logger:           logger,
	}
}

// List godoc
// @Summary List document inventory
// @Description Get one page of the document inventory scoped to the session's selected project. Changing any filter other than page resets the page to 1.
// @Tags Inventory
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param docType query string false "Filter by document type" Enums(sow, timeline, deliverable, misc)
// @Param mediaType query string false "Filter by media type"
// @Param status query string false "Filter by document status"
// @Param q query string false "Free-text search"
// @Success 200 {object} domain.InventoryPage
// @Failure 401 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /inventory [get]
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userCtx := auth.MustFromContext(r.Context())

	requested := domain.InventoryFilters{
		Page:      queryInt(r, "page", 0),
		PageSize:  queryInt(r, "pageSize", 0),
		DocType:   r.URL.Query().Get("docType"),
		MediaType: r.URL.Query().Get("mediaType"),
		Status:    r.URL.Query().Get("status"),
		Query:     r.URL.Query().Get("q"),
	}

	page, err := h.inventoryService.List(r.Context(), userCtx.UserID, requested)
	if err != nil {
		if errors.Is(err, service.ErrStaleScope) && h.metrics != nil {
			h.metrics.RecordStaleScopeDiscard()
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

// Filters godoc
// @Summary Get current inventory filters
// @Description Get the filter state the next inventory request will start from
// @Tags Inventory
// @Produce json
// @Success 200 {object} domain.InventoryFilters
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Router /inventory/filters [get]
func (h *InventoryHandler) Filters(w http.ResponseWriter, r *http.Request) {
	userCtx := auth.MustFromContext(r.Context())

	filters, err := h.inventoryService.Filters(r.Context(), userCtx.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, filters)
}

// Pending godoc
// @Summary List documents awaiting review
// @Description Get one page of the approval queue, each item decorated with its allowed actions
// @Tags Inventory
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Success 200 {object} domain.ApprovalQueuePage
// @Failure 401 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /inventory/pending [get]
func (h *InventoryHandler) Pending(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", domain.DefaultPageSize)

	queue, err := h.approvalService.Pending(r.Context(), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, queue)
}
