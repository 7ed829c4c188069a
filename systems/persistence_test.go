package systems

import (
	"path/filepath"
	"testing"

	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPersistenceMemory(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = "memory"
	p, err := OpenPersistence(cfg)
	require.NoError(t, err)

	_, err = p.Saves.Create("slot", 2, nil)
	require.NoError(t, err)
	assert.True(t, p.Saves.HasSaveGame())
	assert.NoError(t, p.Close())
}

func TestOpenPersistenceSQLiteClose(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = "sqlite"
	cfg.Store.Path = filepath.Join(t.TempDir(), "prefs.db")
	p, err := OpenPersistence(cfg)
	require.NoError(t, err)
	p.Prefs.SetInt("volume", 4)
	slot, err := p.Saves.Create("slot", 1, nil)
	require.NoError(t, err)
	require.NoError(t, p.Close())

	reopened, err := OpenPersistence(cfg)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, 4, reopened.Prefs.GetInt("volume", 0))
	got, err := reopened.Saves.Load(slot.ID)
	require.NoError(t, err)
	assert.Equal(t, "slot", got.Name)
}

func TestStoredVolume(t *testing.T) {
	store := prefs.NewMemoryStore()
	store.SetFloat("a", 0.3)
	store.SetInt("b", 75)
	store.SetString("c", "loud")

	v, ok := storedVolume(store, "a")
	assert.True(t, ok)
	assert.Equal(t, 0.3, v)
	v, ok = storedVolume(store, "b")
	assert.True(t, ok)
	assert.Equal(t, 0.75, v)
	_, ok = storedVolume(store, "c")
	assert.False(t, ok)
	_, ok = storedVolume(store, "missing")
	assert.False(t, ok)
}
