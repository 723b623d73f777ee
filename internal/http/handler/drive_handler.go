package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

type DriveHandler struct {
	driveService *service.DriveService
	logger       *zap.Logger
}

func NewDriveHandler(driveService *service.DriveService, logger *zap.Logger) *DriveHandler {
	return &DriveHandler{
		driveService: driveService,
		logger:       logger,
	}
}

// Sync godoc
// @Summary Sync Drive folders
// @Description Trigger a server-side sync of the given Drive folders. Folders may be raw IDs or full Drive URLs, separated by newlines or commas.
// @Tags Drive
// @Accept json
// @Produce json
// @Param request body domain.DriveSyncRequest true "Folder references"
// @Success 200 {object} domain.DriveSyncResponse
// @Failure 400 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /drive/sync [post]
func (h *DriveHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req domain.DriveSyncRequest
	if err := decodeBody(r, &req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, ve)
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.driveService.Sync(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Search godoc
// @Summary Search a Drive folder
// @Description List candidate documents discovered in one Drive folder
// @Tags Drive
// @Accept json
// @Produce json
// @Param request body domain.DriveSearchRequest true "Folder reference"
// @Success 200 {object} domain.DriveSearchResponse
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /drive/search [post]
func (h *DriveHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req domain.DriveSearchRequest
	if err := decodeBody(r, &req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, ve)
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.driveService.Search(r.Context(), req.Folder)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// AnalyzeIndex godoc
// @Summary Analyze a document index
// @Description Analyze a spreadsheet or CSV document index. The outcome is one of: documents created, access required, or access request already sent.
// @Tags Drive
// @Accept json
// @Produce json
// @Param request body domain.AnalyzeIndexRequest true "Index location and type"
// @Success 200 {object} domain.AnalyzeIndexResponse
// @Failure 400 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /index/analyze [post]
func (h *DriveHandler) AnalyzeIndex(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeIndexRequest
	if err := decodeBody(r, &req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, ve)
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.driveService.AnalyzeIndex(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// RequestIndexAccess godoc
// @Summary Request access to a document index
// @Description Send the follow-up access request for an index the backend could not read
// @Tags Drive
// @Accept json
// @Produce json
// @Param request body domain.RequestIndexAccessRequest true "Index location and optional message"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /index/request-access [post]
func (h *DriveHandler) RequestIndexAccess(w http.ResponseWriter, r *http.Request) {
	var req domain.RequestIndexAccessRequest
	if err := decodeBody(r, &req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, ve)
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.driveService.RequestIndexAccess(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: message})
}
