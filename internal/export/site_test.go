package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSite(t *testing.T) *Site {
	return buildSite(t, nil,
		deck("1", "2025-05-01T00:00:00Z", []string{"Thrasios", "Tymna"}, "Sol Ring", "Arcane Signet"),
		deck("2", "2025-05-02T00:00:00Z", []string{"Atraxa"}, "Sol Ring"),
		deck("3", "2025-05-03T00:00:00Z", []string{"Korvold"}, "Sol Ring"),
	)
}

func TestSiteWriterLayout(t *testing.T) {
	dir := t.TempDir()
	w := NewSiteWriter(WriterOptions{Dir: dir, CSV: true}, nil)

	report, err := w.Write(context.Background(), sampleSite(t))
	require.NoError(t, err)

	for _, name := range []string{
		CommandersFile, PairsFile, CardsFile, BanlistFile, MetaFile, SearchIndexFile,
		CommandersCSV, CardsCSV,
		filepath.Join(CommandersDir, "atraxa.json"),
		filepath.Join(CommandersDir, "thrasios.json"),
		filepath.Join(CommandersDir, "thrasios--tymna.json"),
		filepath.Join(CardsDir, "sol-ring.json"),
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	assert.NoFileExists(t, filepath.Join(dir, CardsDir, "arcane-signet.json"))

	files, size := report.GroupSize(CommandersDir)
	assert.Equal(t, 5, files)
	assert.Positive(t, size)

	data, err := os.ReadFile(filepath.Join(dir, CommandersDir, "thrasios--tymna.json"))
	require.NoError(t, err)
	var detail PairDetail
	require.NoError(t, json.Unmarshal(data, &detail))
	assert.Equal(t, "thrasios--tymna", detail.Pair.ID)
	assert.Equal(t, 1, detail.Pair.DeckCount)

	data, err = os.ReadFile(filepath.Join(dir, MetaFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"total_decks\": 3", "meta.json is indented")
}

func TestSiteWriterCleansStaleFiles(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, CommandersDir, "retired-commander.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("{}"), 0o644))

	w := NewSiteWriter(WriterOptions{Dir: dir}, nil)
	_, err := w.Write(context.Background(), sampleSite(t))
	require.NoError(t, err)
	assert.FileExists(t, stale, "stale files survive without Clean")

	w = NewSiteWriter(WriterOptions{Dir: dir, Clean: true}, nil)
	report, err := w.Write(context.Background(), sampleSite(t))
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
	assert.Equal(t, 1, report.Removed)
	assert.FileExists(t, filepath.Join(dir, CommandersDir, "atraxa.json"))
}

func TestSiteWriterSkipsEmptySlug(t *testing.T) {
	site := sampleSite(t)
	site.CommanderDetails[0].Commander.ID = ""

	report, err := NewSiteWriter(WriterOptions{Dir: t.TempDir()}, nil).Write(context.Background(), site)
	require.NoError(t, err)
	assert.Equal(t, 1, report.SkippedSlugs)
}

func TestSiteWriterValidateDetectsCorruption(t *testing.T) {
	dir := t.TempDir()
	w := NewSiteWriter(WriterOptions{Dir: dir}, nil)
	report, err := w.Write(context.Background(), sampleSite(t))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, CardsFile), []byte("[{"), 0o644))
	assert.ErrorIs(t, w.Validate(report), ErrInvalidOutput)
}

func TestSiteWriterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSiteWriter(WriterOptions{Dir: t.TempDir()}, nil).Write(ctx, sampleSite(t))
	assert.ErrorIs(t, err, context.Canceled)
}
