package handler

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/repository"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

type AuditHandler struct {
	auditService *service.AuditLogService
	logger       *zap.Logger
}

func NewAuditHandler(auditService *service.AuditLogService, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
		logger:       logger,
	}
}

// List godoc
// @Summary List audit log entries
// @Description Get recorded console mutations, newest first
// @Tags Audit
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param action query string false "Filter by action" Enums(create, update, delete)
// @Param entityType query string false "Filter by entity type"
// @Param entityId query string false "Filter by entity ID"
// @Param userId query string false "Filter by acting user"
// @Param since query string false "Only entries after this RFC3339 timestamp"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", domain.DefaultPageSize)

	filters := repository.AuditLogFilters{
		Action:     domain.AuditAction(r.URL.Query().Get("action")),
		EntityType: r.URL.Query().Get("entityType"),
		EntityID:   r.URL.Query().Get("entityId"),
		UserID:     r.URL.Query().Get("userId"),
	}

	if since := r.URL.Query().Get("since"); since != "" {
		ts, err := time.Parse(time.RFC3339, since)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "since must be an RFC3339 timestamp")
			return
		}
		filters.Since = &ts
	}

	entries, total, err := h.auditService.List(r.Context(), filters, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":    entries,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}
