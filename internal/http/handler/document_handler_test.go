package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/backend"
	"github.com/bsimkins11/project-agent-admin/internal/config"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/http/handler"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

// newDocumentRouter mounts the document handler behind a chi router the way
// the real route tree does
func newDocumentRouter(t *testing.T, backendHandler http.Handler) chi.Router {
	server := httptest.NewServer(backendHandler)
	t.Cleanup(server.Close)

	client, err := backend.NewClient(&config.BackendConfig{
		BaseURL:        server.URL,
		RequestTimeout: 5,
	}, zap.NewNop())
	require.NoError(t, err)

	approvalService := service.NewApprovalService(client, zap.NewNop())
	h := handler.NewDocumentHandler(approvalService, nil, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/documents/{id}", func(r chi.Router) {
		r.Post("/approve", h.Approve)
		r.Post("/reject", h.Reject)
		r.Post("/deny-access", h.DenyAccess)
		r.Patch("/metadata", h.UpdateMetadata)
	})
	return r
}

func okBackend() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestDocumentHandler_Approve_OK(t *testing.T) {
	router := newDocumentRouter(t, okBackend())

	req := httptest.NewRequest(http.MethodPost, "/documents/doc-1/approve?status=awaiting_approval", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "document approved", resp.Message)
}

func TestDocumentHandler_Approve_StatusGateConflict(t *testing.T) {
	backendCalled := false
	router := newDocumentRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalled = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/documents/doc-1/approve?status=processed", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, backendCalled)
}

func TestDocumentHandler_Reject_RequiresReason(t *testing.T) {
	router := newDocumentRouter(t, okBackend())

	req := httptest.NewRequest(http.MethodPost, "/documents/doc-1/reject", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Contains(t, apiErr.Errors, "reason")
}

func TestDocumentHandler_Reject_OK(t *testing.T) {
	var gotReason map[string]string
	router := newDocumentRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReason))
		w.WriteHeader(http.StatusOK)
	}))

	body := `{"reason": "duplicate upload"}`
	req := httptest.NewRequest(http.MethodPost, "/documents/doc-1/reject?status=awaiting_approval", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "duplicate upload", gotReason["reason"])
}

func TestDocumentHandler_DenyAccess_RequiresReason(t *testing.T) {
	router := newDocumentRouter(t, okBackend())

	req := httptest.NewRequest(http.MethodPost, "/documents/doc-1/deny-access", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentHandler_UpdateMetadata_EmptyUpdateRejected(t *testing.T) {
	router := newDocumentRouter(t, okBackend())

	req := httptest.NewRequest(http.MethodPatch, "/documents/doc-1/metadata", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentHandler_BackendUnavailableMapsToBadGateway(t *testing.T) {
	router := newDocumentRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	req := httptest.NewRequest(http.MethodPost, "/documents/doc-1/approve?status=awaiting_approval", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestDocumentHandler_BackendNotFoundPassesThrough(t *testing.T) {
	router := newDocumentRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "no such document"}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/documents/missing/approve?status=awaiting_approval", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
