package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCommitAndStat(t *testing.T) {
	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	tmp, err := store.CreateTemp()
	require.NoError(t, err)
	_, err = tmp.WriteString("payload")
	require.NoError(t, err)
	require.NoError(t, tmp.Close())

	require.NoError(t, store.Commit(tmp.Name(), "abc.tif"))

	info, err := store.Stat("abc.tif")
	require.NoError(t, err)
	assert.Equal(t, int64(len("payload")), info.Size())
}

func TestCleanup(t *testing.T) {
	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	path := filepath.Join(store.Root(), "gone.ply")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	store.Cleanup("gone.ply")
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// absent file is not an error
	store.Cleanup("gone.ply")
	// names with separators are ignored outright
	store.Cleanup("../escape")
	store.Cleanup("")
}

func TestNewStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "plots")
	_, err := NewStore(dir, nil)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
