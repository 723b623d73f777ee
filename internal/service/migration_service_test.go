package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/config"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

func TestMigrationService_Run_PostsConfiguredTargets(t *testing.T) {
	var gotBody map[string]string
	client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/migrate-to-rbac", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(domain.MigrationResult{
			Migrated: 7, Skipped: 2, ClientID: "client-fixed", ProjectID: "project-fixed",
		})
	}))

	svc := service.NewMigrationService(client, &config.MigrationConfig{
		ClientID:  "client-fixed",
		ProjectID: "project-fixed",
	}, zap.NewNop())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "client-fixed", gotBody["client_id"])
	assert.Equal(t, "project-fixed", gotBody["project_id"])
	assert.Equal(t, 7, result.Migrated)
	assert.Equal(t, 2, result.Skipped)
}
