package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/metrics"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

// DocumentHandler exposes the per-document workflow actions. Callers include
// the document's current status so an action a stale view would allow gets
// rejected here instead of at the backend.
type DocumentHandler struct {
	approvalService *service.ApprovalService
	metrics         *metrics.ConsoleMetrics
	logger          *zap.Logger
}

func NewDocumentHandler(approvalService *service.ApprovalService, m *metrics.ConsoleMetrics, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		approvalService: approvalService,
		metrics:         m,
		logger:          logger,
	}
}

// docID pulls the document ID from the route
func docID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// docStatus pulls the caller's view of the document status; empty skips the
// local gate
func docStatus(r *http.Request) domain.DocumentStatus {
	return domain.DocumentStatus(r.URL.Query().Get("status"))
}

func (h *DocumentHandler) recordAction(action domain.DocumentAction, err error) {
	if h.metrics != nil {
		h.metrics.RecordDocumentAction(serviceName, string(action), err)
	}
}

// Approve godoc
// @Summary Approve a document
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Param status query string false "Document status as seen by the caller"
// @Success 200 {object} domain.MessageResponse
// @Failure 409 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /documents/{id}/approve [post]
func (h *DocumentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	err := h.approvalService.Approve(r.Context(), docID(r), docStatus(r))
	h.recordAction(domain.ActionApprove, err)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "document approved"})
}

// Reject godoc
// @Summary Reject a document
// @Description Reject a document with a mandatory reason
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body domain.RejectRequest true "Rejection reason"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /documents/{id}/reject [post]
func (h *DocumentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req domain.RejectRequest
	if err := decodeBody(r, &req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, ve)
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.approvalService.Reject(r.Context(), docID(r), req.Reason, docStatus(r))
	h.recordAction(domain.ActionReject, err)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "document rejected"})
}

// RequestAccess godoc
// @Summary Request access to a document
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body domain.AccessMessageRequest false "Optional message to the owner"
// @Success 200 {object} domain.MessageResponse
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /documents/{id}/request-access [post]
func (h *DocumentHandler) RequestAccess(w http.ResponseWriter, r *http.Request) {
	var req domain.AccessMessageRequest
	// The message is optional; an empty body is fine
	_ = decodeBody(r, &req)

	err := h.approvalService.RequestAccess(r.Context(), docID(r), req.Message, docStatus(r))
	h.recordAction(domain.ActionRequestAccess, err)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "access requested"})
}

// GrantAccess godoc
// @Summary Record that document access was granted
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body domain.GrantAccessRequest false "Optional reviewer notes"
// @Success 200 {object} domain.MessageResponse
// @Security BearerAuth
// @Router /documents/{id}/grant-access [post]
func (h *DocumentHandler) GrantAccess(w http.ResponseWriter, r *http.Request) {
	var req domain.GrantAccessRequest
	_ = decodeBody(r, &req)

	if err := h.approvalService.GrantAccess(r.Context(), docID(r), req.Notes); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "access granted"})
}

// DenyAccess godoc
// @Summary Record that document access was denied
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body domain.DenyAccessRequest true "Denial reason"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /documents/{id}/deny-access [post]
func (h *DocumentHandler) DenyAccess(w http.ResponseWriter, r *http.Request) {
	var req domain.DenyAccessRequest
	if err := decodeBody(r, &req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, ve)
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.approvalService.DenyAccess(r.Context(), docID(r), req.Reason); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "access denied"})
}

// SubmitForProcessing godoc
// @Summary Queue an approved document for processing
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Param status query string false "Document status as seen by the caller"
// @Success 200 {object} domain.MessageResponse
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /documents/{id}/submit-for-processing [post]
func (h *DocumentHandler) SubmitForProcessing(w http.ResponseWriter, r *http.Request) {
	err := h.approvalService.SubmitForProcessing(r.Context(), docID(r), docStatus(r))
	h.recordAction(domain.ActionSubmitForProcessing, err)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "document queued for processing"})
}

// Process godoc
// @Summary Start processing a queued document
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Param status query string false "Document status as seen by the caller"
// @Success 200 {object} domain.MessageResponse
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /documents/{id}/process [post]
func (h *DocumentHandler) Process(w http.ResponseWriter, r *http.Request) {
	err := h.approvalService.Process(r.Context(), docID(r), docStatus(r))
	h.recordAction(domain.ActionProcess, err)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "processing started"})
}

// Retry godoc
// @Summary Retry processing a failed document
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Param status query string false "Document status as seen by the caller"
// @Success 200 {object} domain.MessageResponse
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /documents/{id}/retry [post]
func (h *DocumentHandler) Retry(w http.ResponseWriter, r *http.Request) {
	err := h.approvalService.Retry(r.Context(), docID(r), docStatus(r))
	h.recordAction(domain.ActionRetry, err)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "processing retried"})
}

// Delete godoc
// @Summary Delete a document record
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.approvalService.Delete(r.Context(), docID(r)); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "document deleted"})
}

// UpdateMetadata godoc
// @Summary Correct document metadata
// @Description Apply a partial metadata update; only fields present in the body are changed
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body domain.UpdateMetadataRequest true "Fields to update"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /documents/{id}/metadata [patch]
func (h *DocumentHandler) UpdateMetadata(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateMetadataRequest
	if err := decodeBody(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.approvalService.UpdateMetadata(r.Context(), docID(r), req); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "metadata updated"})
}
