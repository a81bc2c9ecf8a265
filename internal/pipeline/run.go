// Package pipeline runs a complete build: load the scraper output, aggregate it,
// derive every view, write the output tree and its side artifacts.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ramonehamilton/rudc-rec/internal/aggregate"
	"github.com/ramonehamilton/rudc-rec/internal/charts"
	"github.com/ramonehamilton/rudc-rec/internal/config"
	"github.com/ramonehamilton/rudc-rec/internal/corpus"
	"github.com/ramonehamilton/rudc-rec/internal/export"
	"github.com/ramonehamilton/rudc-rec/internal/metrics"
)

// Stage names used for timing.
const (
	StageLoad      = "load"
	StageAggregate = "aggregate"
	StageBuild     = "build"
	StageWrite     = "write"
)

// RunOptions holds the per-run inputs that are not part of the config file.
type RunOptions struct {
	// AsOf is the reference instant for recency windows. Zero means now.
	AsOf time.Time
	// RunID tags every log line of the run. Empty means a fresh UUID.
	RunID string
}

// Summary describes a completed run.
type Summary struct {
	RunID      string
	AsOf       time.Time
	Load       corpus.LoadStats
	Decks      int
	Commanders int
	Pairs      int
	Cards      int
	CardPages  int
	Skipped    aggregate.SkipStats
	Conflicts  int
	Written    *export.WriteReport
	ReportPath string
	Duration   time.Duration
}

// Run performs one full build. Missing required inputs and invalid output are fatal;
// individual bad deck files are skipped.
func Run(ctx context.Context, cfg *config.Config, opts RunOptions, logger *zap.Logger) (*Summary, error) {
	start := time.Now()
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	if opts.AsOf.IsZero() {
		opts.AsOf = start
	}
	opts.AsOf = opts.AsOf.UTC()

	logger = logger.With(zap.String("run_id", opts.RunID))
	m := metrics.NewBuildMetrics()
	summary := &Summary{RunID: opts.RunID, AsOf: opts.AsOf}

	logger.Info("Starting build",
		zap.String("data_dir", cfg.Input.DataDir),
		zap.String("output_dir", cfg.Output.Dir),
		zap.Time("as_of", opts.AsOf))

	stage := time.Now()
	banlist, err := corpus.LoadBanlist(cfg.Input.BanlistFile)
	if err != nil {
		return nil, err
	}

	index, err := corpus.LoadDeckIndex(cfg.Input.DeckIndexFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("No deck index, using deck documents only", zap.String("path", cfg.Input.DeckIndexFile))
		} else {
			logger.Warn("Ignoring unreadable deck index", zap.Error(err))
		}
	}

	decks, loadStats, err := corpus.NewLoader(index, logger).LoadDecks(ctx, cfg.Input.DecksDir)
	if err != nil {
		return nil, err
	}
	summary.Load = loadStats
	m.RecordStage(StageLoad, time.Since(stage))
	logger.Info("Loaded decks",
		zap.Int("files", loadStats.Files),
		zap.Int("loaded", loadStats.Loaded),
		zap.Int("parse_errors", loadStats.ParseErrors),
		zap.Int("indexed", loadStats.Indexed))

	stage = time.Now()
	result := aggregate.Aggregate(decks, aggregate.Options{DeckURLBase: cfg.Links.DeckURLBase}, logger)
	m.RecordStage(StageAggregate, time.Since(stage))
	logger.Info("Aggregated corpus",
		zap.Int("decks", result.TotalDecks),
		zap.Int("commanders", len(result.Commanders)),
		zap.Int("pairs", len(result.Pairs)),
		zap.Int("cards", result.GlobalCards.Len()),
		zap.Int("skipped_no_commanders", result.Skipped.NoCommanders))
	if result.CardConflicts > 0 {
		logger.Warn("Card metadata conflicts kept first observation", zap.Int("conflicts", result.CardConflicts))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stage = time.Now()
	site := export.NewSiteBuilder(result).
		WithBanlist(banlist).
		WithAsOf(opts.AsOf).
		WithTopCardsPerCategory(cfg.Stats.TopCardsPerCategory).
		WithCardDetailMinDecks(cfg.Stats.CardDetailMinDecks).
		WithRecentTopN(cfg.Stats.RecentTopN).
		WithSearchIndexLimit(cfg.Stats.SearchIndexLimit).
		WithImageBaseURL(cfg.Links.ImageBaseURL).
		Build()
	m.RecordStage(StageBuild, time.Since(stage))

	stage = time.Now()
	writer := export.NewSiteWriter(export.WriterOptions{
		Dir:        cfg.Output.Dir,
		PrettyJSON: cfg.Output.PrettyJSON,
		Clean:      cfg.Output.Clean,
		CSV:        cfg.Output.CSV,
	}, logger)
	written, err := writer.Write(ctx, site)
	if err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	m.RecordStage(StageWrite, time.Since(stage))

	summary.Decks = result.TotalDecks
	summary.Commanders = len(site.Commanders)
	summary.Pairs = len(site.Pairs)
	summary.Cards = len(site.Cards)
	summary.CardPages = len(site.CardDetails)
	summary.Skipped = result.Skipped
	summary.Conflicts = result.CardConflicts
	summary.Written = written

	if cfg.Report.Enabled {
		path, err := charts.RenderReport(reportData(site), cfg.Report.Dir)
		if err != nil {
			return nil, fmt.Errorf("render report: %w", err)
		}
		summary.ReportPath = path
		logger.Info("Wrote HTML report", zap.String("path", path))
	}

	logSizes(logger, written)
	summary.Duration = time.Since(start)

	if cfg.Metrics.Textfile != "" {
		recordMetrics(m, summary)
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return nil, err
		}
	}

	logger.Info("Build complete",
		zap.Int("decks", summary.Decks),
		zap.Int("commanders", summary.Commanders),
		zap.Int("card_pages", summary.CardPages),
		zap.Duration("duration", summary.Duration))

	return summary, nil
}

func recordMetrics(m *metrics.BuildMetrics, s *Summary) {
	m.Decks.Set(float64(s.Decks))
	m.Commanders.Set(float64(s.Commanders))
	m.Pairs.Set(float64(s.Pairs))
	m.Cards.Set(float64(s.Cards))
	m.CardPages.Set(float64(s.CardPages))
	m.CardConflicts.Set(float64(s.Conflicts))
	m.RecordSkipped(metrics.SkipParseError, s.Load.ParseErrors)
	m.RecordSkipped(metrics.SkipNoCommanders, s.Skipped.NoCommanders)

	var total int64
	for _, f := range s.Written.Files {
		total += f.Size
	}
	m.OutputBytes.Set(float64(total))
	m.RecordSuccess(time.Now(), s.Duration)
}

// logSizes reports the top-level file sizes and the per-directory totals.
func logSizes(logger *zap.Logger, report *export.WriteReport) {
	for _, f := range report.Files {
		if f.Group != "" {
			continue
		}
		logger.Info("Wrote file", zap.String("path", f.Path), zap.String("size", humanize.Bytes(uint64(f.Size))))
	}
	for _, group := range []string{export.CommandersDir, export.CardsDir, "csv"} {
		files, size := report.GroupSize(group)
		if files == 0 {
			continue
		}
		logger.Info("Wrote directory",
			zap.String("group", group),
			zap.Int("files", files),
			zap.String("size", humanize.Bytes(uint64(size))))
	}
	if report.SkippedSlugs > 0 {
		logger.Warn("Skipped detail files with unusable ids", zap.Int("count", report.SkippedSlugs))
	}
}
