package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "0000000000000000", Key(nil))
	assert.Equal(t, "0000000000000000", Key([]byte{}))

	a := Key([]byte("hello"))
	assert.Len(t, a, 16)
	assert.Equal(t, a, Key([]byte("hello")), "key must be stable")
	assert.NotEqual(t, a, Key([]byte("hello!")))
}

func TestLoadSave_RoundTrip(t *testing.T) {
	root := t.TempDir()
	db := DB{Entries: map[string]string{"a.txt": Key([]byte("content"))}}
	require.NoError(t, Save(root, db))

	loaded, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, db.Entries, loaded.Entries)
}

func TestLoad_MissingIsEmpty(t *testing.T) {
	db, err := Load(t.TempDir())
	assert.Error(t, err)
	assert.NotNil(t, db.Entries)
	assert.Empty(t, db.Entries)
}

func TestLoad_CorruptIsEmpty(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".secret-scanner-cache.json"), []byte("{nope"), 0o644))

	db, err := Load(root)
	assert.Error(t, err)
	assert.Empty(t, db.Entries)
}

func TestDefaultPath_PrefersGitDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))

	require.NoError(t, Save(root, DB{Entries: map[string]string{"x": "y"}}))
	_, err := os.Stat(filepath.Join(root, ".git", "secret-scanner-cache.json"))
	assert.NoError(t, err, "cache should live under .git when present")
}
