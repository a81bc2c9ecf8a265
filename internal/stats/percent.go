package stats

import (
	"math"
	"strconv"
)

// Round1 rounds to one decimal place using the shortest correctly rounded decimal,
// ties to even, so 6.25 becomes 6.2 and 66.666… becomes 66.7.
func Round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil || r == 0 {
		return 0
	}
	return r
}

// InclusionPct returns count/denominator as a percentage rounded to one decimal.
// A zero denominator yields 0.
func InclusionPct(count, denominator int) float64 {
	if denominator <= 0 {
		return 0
	}
	return Round1(float64(count) / float64(denominator) * 100)
}

// Synergy is the over-representation of a card in a scope relative to the whole corpus.
// Both operands must already be rounded; the difference is rounded again.
func Synergy(inclusionPct, globalPct float64) float64 {
	return Round1(inclusionPct - globalPct)
}
