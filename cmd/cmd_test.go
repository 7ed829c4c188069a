package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsPanel = `
settings:
  controls:
    - kind: slider
      type: float
      key: music_volume
      default: 0.5
      max: 1
    - kind: toggle
      key: fullscreen
      type: string
      default: 4
    - kind: input_field
      type: string
      key: player_name
      default: ada
`

// useTempStore points the CLI at a fresh sqlite database.
func useTempStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("GJT_STORE__BACKEND", "sqlite")
	t.Setenv("GJT_STORE__PATH", filepath.Join(dir, "prefs.db"))
	t.Setenv("GJT_LOGGING__LEVEL", "error")
	return dir
}

func writePanel(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "panel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPrefsCommands(t *testing.T) {
	useTempStore(t)

	_, err := run(t, "prefs", "set", "volume", "int", "5")
	require.NoError(t, err)
	_, err = run(t, "prefs", "set", "name", "string", "ada")
	require.NoError(t, err)

	out, err := run(t, "prefs", "get", "volume")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = run(t, "prefs", "list")
	require.NoError(t, err)
	assert.Equal(t, "0\tNone\n1\tname\tString\tada\n2\tvolume\tInt\t5\n", out)

	_, err = run(t, "prefs", "delete", "name")
	require.NoError(t, err)
	_, err = run(t, "prefs", "get", "name")
	assert.Error(t, err)

	_, err = run(t, "prefs", "clear")
	require.NoError(t, err)
	out, err = run(t, "prefs", "list")
	require.NoError(t, err)
	assert.Equal(t, "0\tNone\n", out)
}

func TestPrefsSetRejectsBadValue(t *testing.T) {
	useTempStore(t)
	_, err := run(t, "prefs", "set", "volume", "int", "loud")
	assert.Error(t, err)
	_, err = run(t, "prefs", "set", "volume", "bool", "1")
	assert.Error(t, err)
}

func TestPanelValidateReportsNormalization(t *testing.T) {
	dir := useTempStore(t)
	path := writePanel(t, dir, settingsPanel)

	out, err := run(t, "panel", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "control 1 (fullscreen): type String -> Int")
	assert.Contains(t, out, "control 1 (fullscreen): default Int(4) -> Int(0)")
	assert.Contains(t, out, "ok: 3 controls")
}

func TestPanelValidateDuplicateKey(t *testing.T) {
	dir := useTempStore(t)
	path := writePanel(t, dir, `
settings:
  controls:
    - {kind: toggle, key: vsync}
    - {kind: dropdown, key: vsync, options: [a, b]}
`)
	out, err := run(t, "panel", "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "You cannot have two of the same key for different playerprefs values.")
	assert.Contains(t, out, `Key "vsync" is used by controls 0 and 1.`)

	_, err = run(t, "panel", "apply", path)
	require.Error(t, err)
	out, err = run(t, "prefs", "list")
	require.NoError(t, err)
	assert.Equal(t, "0\tNone\n", out, "nothing written")
}

func TestPanelApplyKeysRemove(t *testing.T) {
	dir := useTempStore(t)
	path := writePanel(t, dir, settingsPanel)

	out, err := run(t, "panel", "apply", path)
	require.NoError(t, err)
	assert.Contains(t, out, "applied 3 preferences")

	out, err = run(t, "prefs", "get", "music_volume")
	require.NoError(t, err)
	assert.Equal(t, "0.5\n", out)

	out, err = run(t, "panel", "keys", path)
	require.NoError(t, err)
	assert.Equal(t, "0\tNone\n1\tmusic_volume\tFloat\n2\tfullscreen\tInt\n3\tplayer_name\tString\n", out)

	out, err = run(t, "panel", "remove", path, "2")
	require.NoError(t, err)
	assert.Contains(t, out, "removed fullscreen")
	_, err = run(t, "prefs", "get", "fullscreen")
	assert.Error(t, err)

	_, err = run(t, "panel", "remove", path, "9")
	assert.ErrorContains(t, err, "out of range")
	_, err = run(t, "panel", "remove", path, "0")
	assert.NoError(t, err)
}

func TestPanelUsesConfiguredFile(t *testing.T) {
	dir := useTempStore(t)
	t.Setenv("GJT_PANELS__SETTINGS", writePanel(t, dir, settingsPanel))

	out, err := run(t, "panel", "keys")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0\tNone\n1\tmusic_volume"))
}

func TestSavesCommands(t *testing.T) {
	useTempStore(t)

	out, err := run(t, "saves", "list")
	require.NoError(t, err)
	assert.Equal(t, "No saved games\n", out)

	cfg, err := config.Load("")
	require.NoError(t, err)
	p, err := systems.OpenPersistence(cfg)
	require.NoError(t, err)
	slot, err := p.Saves.Create("Forest", 2, nil)
	require.NoError(t, err)
	require.NoError(t, p.Close())

	out, err = run(t, "saves", "list")
	require.NoError(t, err)
	assert.Contains(t, out, slot.ID+"\tForest\tscene 2")

	_, err = run(t, "saves", "delete", slot.ID)
	require.NoError(t, err)
	_, err = run(t, "saves", "delete", slot.ID)
	assert.Error(t, err)
}

func TestAudioScan(t *testing.T) {
	useTempStore(t)
	out, err := run(t, "audio", "scan", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "0 clips, music volume 0.50, sfx volume 0.50")
}

func TestBadConfigFile(t *testing.T) {
	_, err := run(t, "--config", "missing.yaml", "prefs", "list")
	assert.ErrorContains(t, err, "load config")
}
