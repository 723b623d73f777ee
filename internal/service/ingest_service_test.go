package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/service"
	"github.com/bsimkins11/project-agent-admin/internal/storage"
)

func newTestIngestService(t *testing.T, handler http.Handler, maxBytes int64) *service.IngestService {
	spool, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return service.NewIngestService(newTestBackend(t, handler), spool, maxBytes, zap.NewNop())
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		raw      string
		expected []string
	}{
		{"alpha,beta,gamma", []string{"alpha", "beta", "gamma"}},
		{" alpha , beta ", []string{"alpha", "beta"}},
		{"alpha,,beta", []string{"alpha", "beta"}},
		{"", nil},
		{" , , ", nil},
		{"single", []string{"single"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, service.SplitTags(tt.raw), "raw=%q", tt.raw)
	}
}

func TestIngestService_Ingest_SplitsTags(t *testing.T) {
	var gotBody map[string]interface{}
	svc := newTestIngestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}), 1<<20)

	err := svc.Ingest(context.Background(), domain.IngestDocumentRequest{
		Title:     "SOW 2026",
		DocType:   "sow",
		SourceURI: "https://example.com/sow.pdf",
		Tags:      " q1 , media ,",
	})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"q1", "media"}, gotBody["tags"])
}

func TestIngestService_UploadSource_RejectsUnsupportedExtension(t *testing.T) {
	backendCalled := false
	svc := newTestIngestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalled = true
	}), 1<<20)

	err := svc.UploadSource(context.Background(), "doc-1", "malware.exe", 10, strings.NewReader("xx"))
	assert.ErrorIs(t, err, service.ErrUnsupportedFileType)
	assert.False(t, backendCalled, "nothing may leave the console for a rejected file type")
}

func TestIngestService_UploadSource_RejectsDeclaredOversize(t *testing.T) {
	backendCalled := false
	svc := newTestIngestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalled = true
	}), 100)

	err := svc.UploadSource(context.Background(), "doc-1", "big.pdf", 101, strings.NewReader("irrelevant"))
	assert.ErrorIs(t, err, service.ErrFileTooLarge)
	assert.False(t, backendCalled)
}

func TestIngestService_UploadSource_RejectsActualOversize(t *testing.T) {
	// Declared size lies; the spooled byte count catches it
	backendCalled := false
	svc := newTestIngestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalled = true
	}), 10)

	err := svc.UploadSource(context.Background(), "doc-1", "sneaky.pdf", 5, strings.NewReader(strings.Repeat("a", 64)))
	assert.ErrorIs(t, err, service.ErrFileTooLarge)
	assert.False(t, backendCalled)
}

func TestIngestService_UploadSource_ForwardsSpooledCopy(t *testing.T) {
	var gotPath string
	svc := newTestIngestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "report.pdf", header.Filename)
		w.WriteHeader(http.StatusOK)
	}), 1<<20)

	err := svc.UploadSource(context.Background(), "doc-1", "report.pdf", 11, strings.NewReader("pdf content"))
	require.NoError(t, err)
	assert.Equal(t, "/documents/doc-1/upload", gotPath)
}

func TestIngestService_IngestCSV_RequiresCSVExtension(t *testing.T) {
	svc := newTestIngestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), 1<<20)

	err := svc.IngestCSV(context.Background(), "bulk.xlsx", 10, strings.NewReader("a,b"))
	assert.ErrorIs(t, err, service.ErrUnsupportedFileType)

	// Extension match is case-insensitive
	err = svc.IngestCSV(context.Background(), "bulk.CSV", 10, strings.NewReader("a,b"))
	assert.NoError(t, err)
}
