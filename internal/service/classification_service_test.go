package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

var testTaxonomy = domain.ClassificationOptions{
	DocTypes: []domain.ClassificationOption{
		{Value: "sow", Label: "SOW"},
		{Value: "deliverable", Label: "Deliverable"},
	},
	Categories: map[string][]domain.ClassificationOption{
		"sow": {{Value: "master", Label: "Master"}},
	},
	Subcategories: map[string][]domain.ClassificationOption{
		"master": {{Value: "amendment", Label: "Amendment"}},
	},
}

func taxonomyHandler(fetches *atomic.Int32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/classification/options" {
			fetches.Add(1)
			_ = json.NewEncoder(w).Encode(testTaxonomy)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestClassificationService_Options_CachesWithinTTL(t *testing.T) {
	var fetches atomic.Int32
	client := newTestBackend(t, taxonomyHandler(&fetches))
	svc := service.NewClassificationService(client, time.Minute, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		opts, err := svc.Options(ctx)
		require.NoError(t, err)
		assert.Len(t, opts.DocTypes, 2)
	}
	assert.Equal(t, int32(1), fetches.Load(), "fresh cache must not refetch")
}

func TestClassificationService_Options_RefetchesAfterTTL(t *testing.T) {
	var fetches atomic.Int32
	client := newTestBackend(t, taxonomyHandler(&fetches))
	svc := service.NewClassificationService(client, time.Nanosecond, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Options(ctx)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = svc.Options(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(2), fetches.Load())
}

func TestClassificationService_Refresh_ServesStaleOnFailure(t *testing.T) {
	var failing atomic.Bool
	var fetches atomic.Int32
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fetches.Add(1)
		_ = json.NewEncoder(w).Encode(testTaxonomy)
	}))

	svc := service.NewClassificationService(client, time.Minute, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	failing.Store(true)
	opts, err := svc.Refresh(ctx)
	require.NoError(t, err, "stale taxonomy beats no taxonomy")
	assert.Len(t, opts.DocTypes, 2)
}

func TestClassificationService_Refresh_FailsWithoutCache(t *testing.T) {
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	svc := service.NewClassificationService(client, time.Minute, zap.NewNop())
	_, err := svc.Refresh(context.Background())
	assert.Error(t, err)
}

func TestClassificationService_Assign_Validation(t *testing.T) {
	var assigned atomic.Int32
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/classification/options" {
			_ = json.NewEncoder(w).Encode(testTaxonomy)
			return
		}
		assigned.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	svc := service.NewClassificationService(client, time.Minute, zap.NewNop())
	ctx := context.Background()

	err := svc.Assign(ctx, "doc-1", domain.AssignClassificationRequest{DocType: "memo"})
	assert.ErrorIs(t, err, service.ErrUnknownDocType)

	err = svc.Assign(ctx, "doc-1", domain.AssignClassificationRequest{DocType: "sow", Category: "minor"})
	assert.ErrorIs(t, err, service.ErrUnknownCategory)

	// Category valid only under its own doc type
	err = svc.Assign(ctx, "doc-1", domain.AssignClassificationRequest{DocType: "deliverable", Category: "master"})
	assert.ErrorIs(t, err, service.ErrUnknownCategory)

	err = svc.Assign(ctx, "doc-1", domain.AssignClassificationRequest{DocType: "sow", Subcategory: "amendment"})
	assert.ErrorIs(t, err, service.ErrInvalidInput, "subcategory requires a category")

	err = svc.Assign(ctx, "doc-1", domain.AssignClassificationRequest{DocType: "sow", Category: "master", Subcategory: "rider"})
	assert.ErrorIs(t, err, service.ErrUnknownSubcategory)

	assert.Equal(t, int32(0), assigned.Load(), "invalid classifications never reach the backend")

	err = svc.Assign(ctx, "doc-1", domain.AssignClassificationRequest{DocType: "sow", Category: "master", Subcategory: "amendment"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), assigned.Load())
}

func TestClassificationService_Assign_OmitsEmptyLevels(t *testing.T) {
	var gotBody map[string]interface{}
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/classification/options" {
			_ = json.NewEncoder(w).Encode(testTaxonomy)
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))

	svc := service.NewClassificationService(client, time.Minute, zap.NewNop())
	err := svc.Assign(context.Background(), "doc-1", domain.AssignClassificationRequest{DocType: "sow"})
	require.NoError(t, err)

	assert.Equal(t, "sow", gotBody["doc_type"])
	_, hasCategory := gotBody["category"]
	assert.False(t, hasCategory, "empty category is omitted, not sent blank")
	_, hasSubcategory := gotBody["subcategory"]
	assert.False(t, hasSubcategory)
}

func TestClassificationService_AssignCategory_FixedEnum(t *testing.T) {
	var assigned atomic.Int32
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assigned.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	svc := service.NewClassificationService(client, time.Minute, zap.NewNop())
	ctx := context.Background()

	err := svc.AssignCategory(ctx, "doc-1", "blueprint")
	assert.ErrorIs(t, err, service.ErrUnknownCategory)
	assert.Equal(t, int32(0), assigned.Load())

	require.NoError(t, svc.AssignCategory(ctx, "doc-1", "invoice"))
	assert.Equal(t, int32(1), assigned.Load())
}
