package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		configPath, dataDir, outputDir, asOf, debug = "", "", "", "", false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "rec-builder dev"), out)
}

func TestBuildCommand(t *testing.T) {
	dataDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "decks"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "banlist.json"),
		[]byte(`{"banned_as_commander": [], "banned_in_deck": []}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "decks", "d1.json"), []byte(`{
  "publicId": "d1",
  "createdAtUtc": "2025-05-01T00:00:00Z",
  "commanders": {"Atraxa": {"quantity": 1, "card": {"name": "Atraxa", "color_identity": ["G", "W"]}}},
  "mainboard": {"Sol Ring": {"quantity": 1, "card": {"name": "Sol Ring", "type_line": "Artifact"}}}
}`), 0o644))

	_, err := execute(t, "build",
		"--config", filepath.Join(t.TempDir(), "missing.toml"),
		"--data-dir", dataDir,
		"--output-dir", outDir,
		"--as-of", "2025-06-01T00:00:00Z")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "meta.json"))
	require.NoError(t, err)
	var meta map[string]any
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Equal(t, float64(1), meta["total_decks"])
	assert.Equal(t, "2025-06-01", meta["last_updated"])
}

func TestBuildCommandRejectsBadAsOf(t *testing.T) {
	_, err := execute(t, "build",
		"--config", filepath.Join(t.TempDir(), "missing.toml"),
		"--data-dir", t.TempDir(),
		"--output-dir", t.TempDir(),
		"--as-of", "yesterday")
	assert.ErrorContains(t, err, "invalid --as-of")
}
