package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsimkins11/project-agent-admin/internal/metrics"
)

func scrape(t *testing.T, m *metrics.ConsoleMetrics) string {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestConsoleMetrics_MiddlewareCountsRequests(t *testing.T) {
	m := metrics.NewConsoleMetrics("admin-console")

	handler := m.Middleware("admin-console", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	body := scrape(t, m)
	assert.Contains(t, body, `console_http_requests_total`)
	assert.Contains(t, body, `path="/api/v1/inventory"`)
	assert.Contains(t, body, `status="200"`)
}

func TestConsoleMetrics_MiddlewareBoundsDocumentPathCardinality(t *testing.T) {
	m := metrics.NewConsoleMetrics("admin-console")

	handler := m.Middleware("admin-console", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{
		"/api/v1/documents/doc-1/approve",
		"/api/v1/documents/doc-2/approve",
	} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, path, nil))
	}

	body := scrape(t, m)
	assert.Contains(t, body, `path="/api/v1/documents/{id}"`)
	assert.NotContains(t, body, "doc-1")
	assert.NotContains(t, body, "doc-2")
}

func TestConsoleMetrics_RecordBackendCall(t *testing.T) {
	m := metrics.NewConsoleMetrics("admin-console")

	m.RecordBackendCall("document-api", "GET /inventory", 30*time.Millisecond, nil)
	m.RecordBackendCall("document-api", "GET /inventory", 30*time.Millisecond, errors.New("boom"))

	body := scrape(t, m)
	assert.Contains(t, body, `console_backend_calls_total`)
	assert.Contains(t, body, `status="success"`)
	assert.Contains(t, body, `status="error"`)
}

func TestConsoleMetrics_WorkflowCounters(t *testing.T) {
	m := metrics.NewConsoleMetrics("admin-console")

	m.RecordDocumentAction("admin-console", "approve", nil)
	m.RecordStaleScopeDiscard()
	m.RecordUploadRejected("admin-console", "too_large")

	body := scrape(t, m)
	assert.Contains(t, body, `console_workflow_document_actions_total`)
	assert.Contains(t, body, `console_workflow_stale_scope_discards_total{service="admin-console"} 1`)
	assert.Contains(t, body, `reason="too_large"`)
}
