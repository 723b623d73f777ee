package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

type ClassificationHandler struct {
	classificationService *service.ClassificationService
	logger                *zap.Logger
}

func NewClassificationHandler(classificationService *service.ClassificationService, logger *zap.Logger) *ClassificationHandler {
	return &ClassificationHandler{
		classificationService: classificationService,
		logger:                logger,
	}
}

// Options godoc
// @Summary Get classification taxonomy
// @Description Get the selectable doc types, categories per doc type and subcategories per category
// @Tags Classification
// @Produce json
// @Success 200 {object} domain.ClassificationOptions
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /classification/options [get]
func (h *ClassificationHandler) Options(w http.ResponseWriter, r *http.Request) {
	options, err := h.classificationService.Options(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, options)
}

// Assign godoc
// @Summary Classify a document
// @Description Assign a cascading doc type / category / subcategory classification. Unset optional levels are omitted from the update, not cleared.
// @Tags Classification
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body domain.AssignClassificationRequest true "Classification"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /documents/{id}/classification [post]
func (h *ClassificationHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req domain.AssignClassificationRequest
	if err := decodeBody(r, &req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, ve)
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.classificationService.Assign(r.Context(), docID(r), req); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "classification assigned"})
}

// AssignCategory godoc
// @Summary Set a document's category
// @Description Assign one of the fixed categories without touching doc type or subcategory
// @Tags Classification
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body domain.AssignCategoryRequest true "Category"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /documents/{id}/category [post]
func (h *ClassificationHandler) AssignCategory(w http.ResponseWriter, r *http.Request) {
	var req domain.AssignCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, ve)
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.classificationService.AssignCategory(r.Context(), docID(r), req.Category); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "category assigned"})
}
