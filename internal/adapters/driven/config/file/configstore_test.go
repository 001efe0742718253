package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("actor", "line-supervisor"))
	require.NoError(t, store.Set("store.chunk_size", int64(250)))
	require.NoError(t, store.Set("verbose", true))

	assert.Equal(t, "line-supervisor", store.GetString("actor"))
	assert.Equal(t, 250, store.GetInt("store.chunk_size"))
	assert.True(t, store.GetBool("verbose"))
}

func TestConfigStore_Get_MissingKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("no_such_key")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("no_such_key"))
	assert.Zero(t, store.GetInt("no_such_key"))
	assert.False(t, store.GetBool("no_such_key"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("backup.dir", "/srv/backups"))

	second, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/srv/backups", second.GetString("backup.dir"))
}

func TestConfigStore_Load_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[backup]\ndir = \"/var/backups\"\n\n[store]\nchunk_size = 100\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "/var/backups", store.GetString("backup.dir"))
	assert.Equal(t, 100, store.GetInt("store.chunk_size"))
}

func TestConfigStore_WrongTypeReturnsZeroValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("actor", int64(42)))

	assert.Empty(t, store.GetString("actor"))
	assert.False(t, store.GetBool("actor"))
}
