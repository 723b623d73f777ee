package service_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bsimkins11/project-agent-admin/internal/backend"
	"github.com/bsimkins11/project-agent-admin/internal/config"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/repository"
	"github.com/bsimkins11/project-agent-admin/internal/service"
)

// newTestBackend returns a backend client pointed at an httptest server
func newTestBackend(t *testing.T, handler http.Handler) *backend.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := backend.NewClient(&config.BackendConfig{
		BaseURL:        server.URL,
		RequestTimeout: 5,
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}

// newTestSessionService returns a session service backed by in-memory sqlite
func newTestSessionService(t *testing.T) *service.SessionService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Session{}))

	return service.NewSessionService(repository.NewSessionRepository(db), zap.NewNop())
}
