// Package metrics records batch-run metrics in a private Prometheus registry and
// writes them as a node_exporter textfile.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rec_builder"

// Skip reasons reported under rec_builder_decks_skipped.
const (
	SkipParseError   = "parse_error"
	SkipNoCommanders = "no_commanders"
)

// BuildMetrics tracks the outcome of one build.
type BuildMetrics struct {
	registry *prometheus.Registry

	Decks         prometheus.Gauge
	Commanders    prometheus.Gauge
	Cards         prometheus.Gauge
	Pairs         prometheus.Gauge
	CardPages     prometheus.Gauge
	Skipped       *prometheus.GaugeVec
	CardConflicts prometheus.Gauge
	OutputBytes   prometheus.Gauge
	StageDuration *prometheus.GaugeVec
	RunDuration   prometheus.Gauge
	LastSuccess   prometheus.Gauge
}

// NewBuildMetrics creates the metrics in a fresh registry.
func NewBuildMetrics() *BuildMetrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	gauge := func(name, help string) prometheus.Gauge {
		return f.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}

	return &BuildMetrics{
		registry:      reg,
		Decks:         gauge("decks", "Decks aggregated in the last build"),
		Commanders:    gauge("commanders", "Distinct commanders in the last build"),
		Cards:         gauge("cards", "Distinct mainboard cards in the last build"),
		Pairs:         gauge("pairs", "Partner pairs in the last build"),
		CardPages:     gauge("card_pages", "Card detail pages written in the last build"),
		CardConflicts: gauge("card_conflicts", "Card observations that disagreed with the first one seen"),
		OutputBytes:   gauge("output_bytes", "Total size of the files written"),
		RunDuration:   gauge("run_duration_seconds", "Wall time of the last build"),
		LastSuccess:   gauge("last_success_timestamp_seconds", "Unix time of the last successful build"),
		Skipped: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "decks_skipped",
			Help:      "Decks not aggregated in the last build, by reason",
		}, []string{"reason"}),
		StageDuration: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time of each build stage",
		}, []string{"stage"}),
	}
}

// Registry exposes the underlying registry for gathering.
func (m *BuildMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordStage records how long a stage took.
func (m *BuildMetrics) RecordStage(stage string, d time.Duration) {
	m.StageDuration.WithLabelValues(stage).Set(d.Seconds())
}

// RecordSkipped records how many decks were dropped for a reason.
func (m *BuildMetrics) RecordSkipped(reason string, n int) {
	m.Skipped.WithLabelValues(reason).Set(float64(n))
}

// RecordSuccess marks the build as complete.
func (m *BuildMetrics) RecordSuccess(at time.Time, runTime time.Duration) {
	m.RunDuration.Set(runTime.Seconds())
	m.LastSuccess.Set(float64(at.Unix()))
}

// WriteTextfile writes every metric to path in the Prometheus text format.
func (m *BuildMetrics) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
