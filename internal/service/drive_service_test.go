package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

func TestParseFolderIDs(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "newline separated IDs",
			raw:      "abc123\ndef456",
			expected: []string{"abc123", "def456"},
		},
		{
			name:     "comma separated IDs",
			raw:      "abc123, def456",
			expected: []string{"abc123", "def456"},
		},
		{
			name:     "full Drive URLs reduced to IDs",
			raw:      "https://drive.google.com/drive/folders/1AbC_d-ef?usp=sharing\nxyz789",
			expected: []string{"1AbC_d-ef", "xyz789"},
		},
		{
			name:     "unparseable URLs dropped",
			raw:      "https://example.com/not-a-folder\nabc123",
			expected: []string{"abc123"},
		},
		{
			name:     "blanks dropped",
			raw:      "\n , \n abc123 \n",
			expected: []string{"abc123"},
		},
		{
			name:     "empty input",
			raw:      "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.ParseFolderIDs(tt.raw))
		})
	}
}

func TestNormalizeFolderID(t *testing.T) {
	assert.Equal(t, "1AbC_d-ef", service.NormalizeFolderID("https://drive.google.com/drive/folders/1AbC_d-ef"))
	assert.Equal(t, "abc123", service.NormalizeFolderID("  abc123  "))
	assert.Empty(t, service.NormalizeFolderID("https://example.com/something-else"))
	assert.Empty(t, service.NormalizeFolderID("   "))
}

func TestDriveService_Sync_RejectsEmptyFolderSet(t *testing.T) {
	backendCalled := false
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalled = true
	}))

	svc := service.NewDriveService(client, zap.NewNop())
	_, err := svc.Sync(context.Background(), domain.DriveSyncRequest{Folders: "https://example.com/nope"})
	assert.ErrorIs(t, err, service.ErrNoFolders)
	assert.False(t, backendCalled)
}

func TestDriveService_Sync_SubmitsNormalizedIDs(t *testing.T) {
	var gotBody struct {
		FolderIDs []string `json:"folder_ids"`
		Recursive bool     `json:"recursive"`
	}
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"folders_processed": 2, "message": "queued"})
	}))

	svc := service.NewDriveService(client, zap.NewNop())
	resp, err := svc.Sync(context.Background(), domain.DriveSyncRequest{
		Folders:   "https://drive.google.com/drive/folders/abc123\ndef456",
		Recursive: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"abc123", "def456"}, gotBody.FolderIDs)
	assert.True(t, gotBody.Recursive)
	assert.Equal(t, 2, resp.FoldersProcessed)
}

func TestDriveService_AnalyzeIndex_Created(t *testing.T) {
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"documents_created": 12, "message": "index parsed"})
	}))

	svc := service.NewDriveService(client, zap.NewNop())
	resp, err := svc.AnalyzeIndex(context.Background(), domain.AnalyzeIndexRequest{
		IndexURL:  "https://docs.google.com/spreadsheets/d/abc",
		IndexType: "spreadsheet",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IndexOutcomeCreated, resp.Outcome)
	assert.Equal(t, 12, resp.DocumentsCreated)
}

func TestDriveService_AnalyzeIndex_AccessRequired(t *testing.T) {
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"access_request_available": true, "details": "share with svc account"}`))
	}))

	svc := service.NewDriveService(client, zap.NewNop())
	resp, err := svc.AnalyzeIndex(context.Background(), domain.AnalyzeIndexRequest{
		IndexURL:  "https://docs.google.com/spreadsheets/d/abc",
		IndexType: "spreadsheet",
	})
	require.NoError(t, err, "a denied index is a workflow branch, not an error")
	assert.Equal(t, domain.IndexOutcomeAccessRequired, resp.Outcome)
	assert.Contains(t, resp.Details, "svc account")
}

func TestDriveService_AnalyzeIndex_AccessAlreadySent(t *testing.T) {
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"access_request_sent": true}`))
	}))

	svc := service.NewDriveService(client, zap.NewNop())
	resp, err := svc.AnalyzeIndex(context.Background(), domain.AnalyzeIndexRequest{
		IndexURL:  "https://docs.google.com/spreadsheets/d/abc",
		IndexType: "csv",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IndexOutcomeAccessAlreadySent, resp.Outcome)
}

func TestDriveService_Search_NormalizesFolder(t *testing.T) {
	var gotBody struct {
		FolderID string `json:"folder_id"`
	}
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"documents": []interface{}{}})
	}))

	svc := service.NewDriveService(client, zap.NewNop())
	resp, err := svc.Search(context.Background(), "https://drive.google.com/drive/folders/abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", gotBody.FolderID)
	assert.Equal(t, "abc123", resp.FolderID)
}
