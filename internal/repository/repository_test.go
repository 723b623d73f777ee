package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.AuditLog{}, &domain.Session{}))
	return db
}

func TestSessionRepository_GetMissingReturnsZeroSession(t *testing.T) {
	repo := repository.NewSessionRepository(setupTestDB(t))

	session, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Empty(t, session.SelectedProjectID)
}

func TestSessionRepository_SaveUpserts(t *testing.T) {
	repo := repository.NewSessionRepository(setupTestDB(t))
	ctx := context.Background()

	err := repo.Save(ctx, &domain.Session{UserID: "user-1", SelectedProjectID: "proj-1"})
	require.NoError(t, err)

	err = repo.Save(ctx, &domain.Session{UserID: "user-1", SelectedProjectID: "proj-2"})
	require.NoError(t, err)

	session, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "proj-2", session.SelectedProjectID)
	assert.False(t, session.UpdatedAt.IsZero())
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := repository.NewSessionRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Session{UserID: "user-1", SelectedProjectID: "proj-1"}))
	require.NoError(t, repo.Delete(ctx, "user-1"))

	session, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, session.SelectedProjectID)
}

func TestAuditLogRepository_CreateFillsDefaults(t *testing.T) {
	repo := repository.NewAuditLogRepository(setupTestDB(t))

	entry := &domain.AuditLog{
		Action:     domain.AuditActionUpdate,
		EntityType: "Document",
		EntityID:   "doc-1",
		UserID:     "user-1",
	}
	require.NoError(t, repo.Create(context.Background(), entry))

	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestAuditLogRepository_ListFiltersAndPages(t *testing.T) {
	repo := repository.NewAuditLogRepository(setupTestDB(t))
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	entries := []domain.AuditLog{
		{Action: domain.AuditActionCreate, EntityType: "Document", EntityID: "doc-1", UserID: "alice", CreatedAt: base},
		{Action: domain.AuditActionUpdate, EntityType: "Document", EntityID: "doc-1", UserID: "bob", CreatedAt: base.Add(time.Minute)},
		{Action: domain.AuditActionDelete, EntityType: "Client", EntityID: "client-1", UserID: "alice", CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range entries {
		require.NoError(t, repo.Create(ctx, &entries[i]))
	}

	got, total, err := repo.List(ctx, repository.AuditLogFilters{EntityType: "Document"}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, got, 2)
	assert.Equal(t, domain.AuditActionUpdate, got[0].Action, "newest first")

	got, total, err = repo.List(ctx, repository.AuditLogFilters{UserID: "alice"}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	since := base.Add(90 * time.Second)
	got, total, err = repo.List(ctx, repository.AuditLogFilters{Since: &since}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "client-1", got[0].EntityID)

	got, _, err = repo.List(ctx, repository.AuditLogFilters{}, 1, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.AuditActionUpdate, got[0].Action)
}
