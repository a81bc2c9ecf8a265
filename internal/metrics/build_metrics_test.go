package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMetricsRecord(t *testing.T) {
	m := NewBuildMetrics()
	m.Decks.Set(120)
	m.RecordSkipped(SkipParseError, 2)
	m.RecordSkipped(SkipNoCommanders, 5)
	m.RecordStage("aggregate", 1500*time.Millisecond)

	assert.Equal(t, 120.0, testutil.ToFloat64(m.Decks))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Skipped.WithLabelValues(SkipParseError)))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Skipped.WithLabelValues(SkipNoCommanders)))
	assert.Equal(t, 1.5, testutil.ToFloat64(m.StageDuration.WithLabelValues("aggregate")))
}

func TestBuildMetricsWriteTextfile(t *testing.T) {
	m := NewBuildMetrics()
	m.Commanders.Set(3)
	m.RecordSuccess(time.Unix(1700000000, 0), 2*time.Second)

	path := filepath.Join(t.TempDir(), "textfile", "rec_builder.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, "rec_builder_commanders 3"), text)
	assert.Contains(t, text, "rec_builder_last_success_timestamp_seconds 1.7e+09")
	assert.Contains(t, text, "rec_builder_run_duration_seconds 2")
}
