package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/metrics"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

// multipartMemoryLimit caps how much of an upload is buffered in memory
// before spilling to disk
const multipartMemoryLimit = 32 << 20

type IngestHandler struct {
	ingestService *service.IngestService
	metrics       *metrics.ConsoleMetrics
	logger        *zap.Logger
}

func NewIngestHandler(ingestService *service.IngestService, m *metrics.ConsoleMetrics, logger *zap.Logger) *IngestHandler {
	return &IngestHandler{
		ingestService: ingestService,
		metrics:       m,
		logger:        logger,
	}
}

func (h *IngestHandler) recordRejected(err error) {
	if h.metrics == nil {
		return
	}
	switch {
	case errors.Is(err, service.ErrFileTooLarge):
		h.metrics.RecordUploadRejected(serviceName, "too_large")
	case errors.Is(err, service.ErrUnsupportedFileType):
		h.metrics.RecordUploadRejected(serviceName, "unsupported_type")
	}
}

// Ingest godoc
// @Summary Ingest a single document record
// @Description Create a document record from metadata. Tags arrive as one comma-separated string.
// @Tags Ingest
// @Accept json
// @Produce json
// @Param request body domain.IngestDocumentRequest true "Document metadata"
// @Success 201 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /ingest/document [post]
func (h *IngestHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req domain.IngestDocumentRequest
	if err := decodeBody(r, &req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, ve)
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.ingestService.Ingest(r.Context(), req); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, domain.MessageResponse{Message: "document ingested"})
}

// IngestCSV godoc
// @Summary Bulk ingest from CSV
// @Description Upload a CSV of document records for bulk ingestion
// @Tags Ingest
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 201 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 413 {object} domain.APIError
// @Failure 415 {object} domain.APIError
// @Security BearerAuth
// @Router /ingest/csv [post]
func (h *IngestHandler) IngestCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if err := h.ingestService.IngestCSV(r.Context(), header.Filename, header.Size, file); err != nil {
		h.recordRejected(err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, domain.MessageResponse{Message: "csv ingested"})
}

// AddSourceURL godoc
// @Summary Attach a source URL to a document
// @Tags Ingest
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body domain.AddSourceURLRequest true "Source URI"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /documents/{id}/source-url [post]
func (h *IngestHandler) AddSourceURL(w http.ResponseWriter, r *http.Request) {
	var req domain.AddSourceURLRequest
	if err := decodeBody(r, &req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, ve)
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.ingestService.AddSourceURL(r.Context(), docID(r), req.SourceURI); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "source URL added"})
}

// UploadSource godoc
// @Summary Upload a source file for a document
// @Description Upload the source file bytes for an existing document. Size and file type are validated before anything is forwarded.
// @Tags Ingest
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Document ID"
// @Param file formData file true "Source file"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 413 {object} domain.APIError
// @Failure 415 {object} domain.APIError
// @Security BearerAuth
// @Router /documents/{id}/upload [post]
func (h *IngestHandler) UploadSource(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if err := h.ingestService.UploadSource(r.Context(), docID(r), header.Filename, header.Size, file); err != nil {
		h.recordRejected(err)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "source file uploaded"})
}
