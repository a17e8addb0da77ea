package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityFSStore_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hpcli", "identity.json")
	store := IdentityFSStore{Path: path}

	_, err := store.Load()
	assert.Error(t, err, "nothing stored yet")

	id := Identity{UserID: 3, Name: "Sophie"}
	require.NoError(t, store.Save(id))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, id, got)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.Error(t, err)

	// clearing twice is fine
	assert.NoError(t, store.Clear())
}

func TestIdentityFSStore_RejectsEmptyIdentity(t *testing.T) {
	store := IdentityFSStore{Path: filepath.Join(t.TempDir(), "identity.json")}
	assert.Error(t, store.Save(Identity{}))
	assert.Error(t, store.Save(Identity{UserID: 1}))
	assert.Error(t, store.Save(Identity{Name: "Marie"}))
}

func TestIdentityFSStore_LoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.json")
	require.NoError(t, os.WriteFile(path, []byte("pas du json"), 0o600))
	store := IdentityFSStore{Path: path}
	_, err := store.Load()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"userId":0,"name":"x"}`), 0o600))
	_, err = store.Load()
	assert.Error(t, err)
}
