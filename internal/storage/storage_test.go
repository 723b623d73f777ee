package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsimkins11/project-agent-admin/internal/storage"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	path, size, err := store.Upload(ctx, "report.pdf", "application/pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), size)
	assert.True(t, strings.HasSuffix(path, ".pdf"), "spooled files keep their extension")

	rc, err := store.Download(ctx, path)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(content))

	require.NoError(t, store.Delete(ctx, path))

	_, err = store.Download(ctx, path)
	assert.Error(t, err)
}

func TestLocalStorage_DistinctPathsForSameFilename(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	path1, _, err := store.Upload(ctx, "dup.pdf", "application/pdf", strings.NewReader("one"))
	require.NoError(t, err)
	path2, _, err := store.Upload(ctx, "dup.pdf", "application/pdf", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, path1, path2)
}
