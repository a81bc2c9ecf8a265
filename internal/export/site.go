package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Output layout, relative to the output directory.
const (
	CommandersFile  = "commanders.json"
	PairsFile       = "pairs.json"
	CardsFile       = "cards.json"
	BanlistFile     = "banlist.json"
	MetaFile        = "meta.json"
	SearchIndexFile = "search-index.json"
	CommandersDir   = "commanders"
	CardsDir        = "cards"
	CommandersCSV   = "commanders.csv"
	CardsCSV        = "cards.csv"
)

// WriterOptions configures where and how a site is written.
type WriterOptions struct {
	Dir        string
	PrettyJSON bool
	// Clean removes detail files left over from earlier runs.
	Clean bool
	CSV   bool
}

// WrittenFile records one file produced by a write.
type WrittenFile struct {
	Path  string
	Group string
	Size  int64
}

// WriteReport summarizes a completed write.
type WriteReport struct {
	Files        []WrittenFile
	Removed      int
	SkippedSlugs int
}

// GroupSize returns the file count and total size of a group ("commanders", "cards" or "").
func (r *WriteReport) GroupSize(group string) (files int, size int64) {
	for _, f := range r.Files {
		if f.Group == group {
			files++
			size += f.Size
		}
	}
	return files, size
}

// SiteWriter emits a Site to disk and validates what it wrote.
type SiteWriter struct {
	opts   WriterOptions
	logger *zap.Logger
}

// NewSiteWriter creates a writer rooted at opts.Dir.
func NewSiteWriter(opts WriterOptions, logger *zap.Logger) *SiteWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SiteWriter{opts: opts, logger: logger.Named("export")}
}

// Write emits every view, then re-parses every JSON file it wrote.
func (w *SiteWriter) Write(ctx context.Context, site *Site) (*WriteReport, error) {
	if w.opts.Dir == "" {
		return nil, errors.New("output directory not set")
	}

	report := &WriteReport{}
	keep := map[string]bool{}

	emit := func(rel, group string, format Format, pretty bool, data interface{}) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(w.opts.Dir, rel)
		n, err := NewExporter(Options{Format: format, FilePath: path, PrettyJSON: pretty}).Export(data)
		if err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
		report.Files = append(report.Files, WrittenFile{Path: path, Group: group, Size: n})
		keep[path] = true
		return nil
	}

	// Ban list and meta are small and read by people, so they are always indented.
	top := []struct {
		name   string
		pretty bool
		data   interface{}
	}{
		{CommandersFile, w.opts.PrettyJSON, site.Commanders},
		{PairsFile, w.opts.PrettyJSON, site.Pairs},
		{CardsFile, w.opts.PrettyJSON, site.Cards},
		{BanlistFile, true, site.Banlist},
		{MetaFile, true, site.Meta},
		{SearchIndexFile, w.opts.PrettyJSON, site.SearchIndex},
	}
	for _, f := range top {
		if err := emit(f.name, "", FormatJSON, f.pretty, f.data); err != nil {
			return report, err
		}
	}

	for _, d := range site.CommanderDetails {
		if !w.checkSlug(d.Commander.ID, d.Commander.Name, report) {
			continue
		}
		rel := filepath.Join(CommandersDir, d.Commander.ID+".json")
		if err := emit(rel, CommandersDir, FormatJSON, w.opts.PrettyJSON, d); err != nil {
			return report, err
		}
	}
	for _, d := range site.PairDetails {
		if !w.checkSlug(d.Pair.ID, d.Pair.ID, report) {
			continue
		}
		rel := filepath.Join(CommandersDir, d.Pair.ID+".json")
		if err := emit(rel, CommandersDir, FormatJSON, w.opts.PrettyJSON, d); err != nil {
			return report, err
		}
	}
	for _, d := range site.CardDetails {
		if !w.checkSlug(d.Card.Slug, d.Card.Name, report) {
			continue
		}
		rel := filepath.Join(CardsDir, d.Card.Slug+".json")
		if err := emit(rel, CardsDir, FormatJSON, w.opts.PrettyJSON, d); err != nil {
			return report, err
		}
	}

	if w.opts.CSV {
		if err := emit(CommandersCSV, "csv", FormatCSV, false, site.CommanderRows()); err != nil {
			return report, err
		}
		if err := emit(CardsCSV, "csv", FormatCSV, false, site.CardRows()); err != nil {
			return report, err
		}
	}

	if w.opts.Clean {
		removed, err := w.removeStale(keep)
		if err != nil {
			return report, err
		}
		report.Removed = removed
	}

	if err := w.Validate(report); err != nil {
		return report, err
	}
	return report, nil
}

// checkSlug rejects ids that would not make a usable file name.
func (w *SiteWriter) checkSlug(id, name string, report *WriteReport) bool {
	if id == "" || strings.ContainsAny(id, `/\`) {
		report.SkippedSlugs++
		w.logger.Warn("Skipping detail file with unusable id", zap.String("name", name))
		return false
	}
	return true
}

// Validate re-parses every JSON file listed in the report.
func (w *SiteWriter) Validate(report *WriteReport) error {
	for _, f := range report.Files {
		if filepath.Ext(f.Path) != ".json" {
			continue
		}
		if err := ValidateJSONFile(f.Path); err != nil {
			return err
		}
	}
	w.logger.Debug("Validated output", zap.Int("files", len(report.Files)))
	return nil
}

// removeStale deletes JSON files in the detail directories that this run did not write.
func (w *SiteWriter) removeStale(keep map[string]bool) (int, error) {
	removed := 0
	for _, dir := range []string{CommandersDir, CardsDir} {
		matches, err := filepath.Glob(filepath.Join(w.opts.Dir, dir, "*.json"))
		if err != nil {
			return removed, err
		}
		for _, path := range matches {
			if keep[path] {
				continue
			}
			if err := os.Remove(path); err != nil {
				return removed, fmt.Errorf("remove stale %s: %w", path, err)
			}
			removed++
		}
	}
	if removed > 0 {
		w.logger.Info("Removed stale detail files", zap.Int("count", removed))
	}
	return removed, nil
}
