package apiclient

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore()

	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
	assert.Empty(t, store.Session())

	require.NoError(t, store.SetTokens("access-1", "refresh-1"))
	require.NoError(t, store.SetSession(`{"id":"user-1"}`))

	assert.Equal(t, "access-1", store.AccessToken())
	assert.Equal(t, "refresh-1", store.RefreshToken())
	assert.Equal(t, `{"id":"user-1"}`, store.Session())

	require.NoError(t, store.SetAccessToken("access-2"))
	assert.Equal(t, "access-2", store.AccessToken())
	assert.Equal(t, "refresh-1", store.RefreshToken(), "renewing access leaves refresh alone")

	require.NoError(t, store.Clear())
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
	assert.Empty(t, store.Session())
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "credentials.json")

	store := NewFileStore(path)
	require.NoError(t, store.SetTokens("access-1", "refresh-1"))
	require.NoError(t, store.SetSession(`{"id":"user-1"}`))

	// a fresh instance simulates an application restart
	reopened := NewFileStore(path)
	assert.Equal(t, "access-1", reopened.AccessToken())
	assert.Equal(t, "refresh-1", reopened.RefreshToken())
	assert.Equal(t, `{"id":"user-1"}`, reopened.Session())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreMissingFileReadsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
	assert.Empty(t, store.Session())
}

func TestFileStoreClearRemovesEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")

	store := NewFileStore(path)
	require.NoError(t, store.SetTokens("access-1", "refresh-1"))
	require.NoError(t, store.SetSession(`{"id":"user-1"}`))
	require.NoError(t, store.Clear())

	reopened := NewFileStore(path)
	assert.Empty(t, reopened.AccessToken())
	assert.Empty(t, reopened.RefreshToken())
	assert.Empty(t, reopened.Session())
}
