package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

func TestApprovalService_Approve_GatedByStatus(t *testing.T) {
	var calls atomic.Int32
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	svc := service.NewApprovalService(client, zap.NewNop())
	ctx := context.Background()

	err := svc.Approve(ctx, "doc-1", domain.StatusProcessed)
	assert.ErrorIs(t, err, service.ErrActionNotAllowed)
	assert.Equal(t, int32(0), calls.Load())

	require.NoError(t, svc.Approve(ctx, "doc-1", domain.StatusAwaitingApproval))
	assert.Equal(t, int32(1), calls.Load())
}

func TestApprovalService_Approve_UnknownStatusSkipsGate(t *testing.T) {
	var calls atomic.Int32
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	svc := service.NewApprovalService(client, zap.NewNop())

	// Callers that cannot report a status defer entirely to the backend
	require.NoError(t, svc.Approve(context.Background(), "doc-1", ""))
	assert.Equal(t, int32(1), calls.Load())
}

func TestApprovalService_Reject_RequiresReason(t *testing.T) {
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	svc := service.NewApprovalService(client, zap.NewNop())
	err := svc.Reject(context.Background(), "doc-1", "", domain.StatusAwaitingApproval)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestApprovalService_Reject_RejectsBlankReason(t *testing.T) {
	var calls atomic.Int32
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	svc := service.NewApprovalService(client, zap.NewNop())
	err := svc.Reject(context.Background(), "doc-1", "   \t", domain.StatusAwaitingApproval)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Equal(t, int32(0), calls.Load(), "blank reason must never reach the backend")
}

func TestApprovalService_DenyAccess_RequiresReason(t *testing.T) {
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	svc := service.NewApprovalService(client, zap.NewNop())
	err := svc.DenyAccess(context.Background(), "doc-1", "")
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	err = svc.DenyAccess(context.Background(), "doc-1", "  ")
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	assert.NoError(t, svc.DenyAccess(context.Background(), "doc-1", "not project material"))
}

func TestApprovalService_WorkflowTransitions(t *testing.T) {
	tests := []struct {
		name    string
		call    func(svc *service.ApprovalService) error
		allowed bool
	}{
		{
			name:    "submit approved document",
			call:    func(svc *service.ApprovalService) error { return svc.SubmitForProcessing(context.Background(), "d", domain.StatusApproved) },
			allowed: true,
		},
		{
			name:    "submit unapproved document",
			call:    func(svc *service.ApprovalService) error { return svc.SubmitForProcessing(context.Background(), "d", domain.StatusUploaded) },
			allowed: false,
		},
		{
			name:    "process queued document",
			call:    func(svc *service.ApprovalService) error { return svc.Process(context.Background(), "d", domain.StatusProcessingRequested) },
			allowed: true,
		},
		{
			name:    "retry failed document",
			call:    func(svc *service.ApprovalService) error { return svc.Retry(context.Background(), "d", domain.StatusFailed) },
			allowed: true,
		},
		{
			name:    "retry healthy document",
			call:    func(svc *service.ApprovalService) error { return svc.Retry(context.Background(), "d", domain.StatusProcessed) },
			allowed: false,
		},
		{
			name:    "request access on fresh upload",
			call:    func(svc *service.ApprovalService) error { return svc.RequestAccess(context.Background(), "d", "", domain.StatusUploaded) },
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			svc := service.NewApprovalService(client, zap.NewNop())

			err := tt.call(svc)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, service.ErrActionNotAllowed)
			}
		})
	}
}

func TestApprovalService_UpdateMetadata_RejectsEmptyUpdate(t *testing.T) {
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	svc := service.NewApprovalService(client, zap.NewNop())
	err := svc.UpdateMetadata(context.Background(), "doc-1", domain.UpdateMetadataRequest{})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestApprovalService_UpdateMetadata_SendsOnlyChangedFields(t *testing.T) {
	var gotBody map[string]interface{}
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))

	svc := service.NewApprovalService(client, zap.NewNop())
	title := "Corrected Title"
	empty := ""
	err := svc.UpdateMetadata(context.Background(), "doc-1", domain.UpdateMetadataRequest{
		Title: &title,
		Notes: &empty,
	})
	require.NoError(t, err)

	assert.Equal(t, "Corrected Title", gotBody["title"])
	assert.Equal(t, "", gotBody["notes"], "an explicit empty string clears the field")
	_, hasDocType := gotBody["doc_type"]
	assert.False(t, hasDocType, "untouched fields stay out of the update")
}

func TestApprovalService_Pending_DecoratesAndClamps(t *testing.T) {
	var gotPage, gotPageSize string
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		gotPageSize = r.URL.Query().Get("page_size")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{
				{"doc_id": "doc-1", "status": "awaiting_approval", "requires_permission": true},
			},
			"total": 1, "page": 1, "page_size": 20, "total_pages": 1,
		})
	}))

	svc := service.NewApprovalService(client, zap.NewNop())
	queue, err := svc.Pending(context.Background(), 0, -5)
	require.NoError(t, err)

	assert.Equal(t, "1", gotPage)
	assert.Equal(t, "20", gotPageSize)
	require.Len(t, queue.Items, 1)
	assert.Equal(t, []domain.DocumentAction{domain.ActionApprove, domain.ActionReject}, queue.Items[0].AllowedActions)
	assert.True(t, queue.Items[0].RequiresPermission)
}
