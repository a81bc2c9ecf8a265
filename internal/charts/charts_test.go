package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "report")
	report := Report{
		Title:             "Commander report",
		ColorDistribution: []DataPoint{{Label: "G", Value: 12}, {Label: "U", Value: 7}},
		TopCommanders:     []DataPoint{{Label: "Atraxa, Praetors' Voice", Value: 40}},
		RecentCommanders:  []DataPoint{{Label: "Korvold, Fae-Cursed King", Value: 9}},
		TopCards:          []DataPoint{{Label: "Sol Ring", Value: 88.2}},
	}

	path, err := RenderReport(report, dir)
	if err != nil {
		t.Fatalf("RenderReport failed: %v", err)
	}
	if path != filepath.Join(dir, ReportFile) {
		t.Errorf("unexpected report path %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	html := string(content)
	for _, want := range []string{"Commander report", "Color distribution", "Most played cards", ManaColors["G"]} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderBarChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.html")
	config := DefaultChartConfig()
	config.Title = "Decks per commander"

	if err := RenderBarChart([]DataPoint{{Label: "Atraxa", Value: 3}}, config, path); err != nil {
		t.Fatalf("RenderBarChart failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty chart file, err=%v", err)
	}
}

func TestRenderBarChartBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "bar.html")
	if err := RenderBarChart(nil, DefaultChartConfig(), path); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
