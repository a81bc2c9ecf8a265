package stats

import (
	"fmt"
	"time"
)

// Day is the length of one window day. Windows are measured in fixed 24h days,
// not calendar days.
const Day = 24 * time.Hour

// TimeRange represents a start and end time period.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// TrailingDaysFrom returns the window covering the given number of days up to asOf.
func TrailingDaysFrom(asOf time.Time, days int) TimeRange {
	return TimeRange{
		Start: asOf.Add(-time.Duration(days) * Day),
		End:   asOf,
	}
}

// Includes reports whether t falls at or after the start of the range.
// The end is not enforced: a deck stamped after the reference instant still counts as recent.
func (tr TimeRange) Includes(t time.Time) bool {
	return !t.IsZero() && !t.Before(tr.Start)
}

// FormatPeriod returns a human-readable description of the time period.
func (tr TimeRange) FormatPeriod() string {
	return fmt.Sprintf("%s to %s", tr.Start.Format("2006-01-02"), tr.End.Format("2006-01-02"))
}

// Recency window lengths in days.
const (
	Window30  = 30
	Window90  = 90
	Window180 = 180
)

// WindowCounts holds how many decks fall within each trailing window.
type WindowCounts struct {
	Last30  int
	Last90  int
	Last180 int
}

// RecencyWindows computes the three trailing windows relative to a fixed reference instant.
type RecencyWindows struct {
	asOf time.Time
	d30  TimeRange
	d90  TimeRange
	d180 TimeRange
}

// NewRecencyWindows builds the 30/90/180 day windows ending at asOf.
func NewRecencyWindows(asOf time.Time) RecencyWindows {
	return RecencyWindows{
		asOf: asOf,
		d30:  TrailingDaysFrom(asOf, Window30),
		d90:  TrailingDaysFrom(asOf, Window90),
		d180: TrailingDaysFrom(asOf, Window180),
	}
}

// AsOf returns the reference instant.
func (w RecencyWindows) AsOf() time.Time {
	return w.asOf
}

// Count tallies creation timestamps into the windows. Zero timestamps (unparseable or
// missing) never count toward any window.
func (w RecencyWindows) Count(created []time.Time) WindowCounts {
	var counts WindowCounts
	for _, t := range created {
		if w.d30.Includes(t) {
			counts.Last30++
		}
		if w.d90.Includes(t) {
			counts.Last90++
		}
		if w.d180.Includes(t) {
			counts.Last180++
		}
	}
	return counts
}
