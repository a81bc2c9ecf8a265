package pipeline

import (
	"sort"

	"github.com/samber/lo"

	"github.com/ramonehamilton/rudc-rec/internal/charts"
	"github.com/ramonehamilton/rudc-rec/internal/export"
)

const reportTopN = 15

// colorOrder is the conventional WUBRG order, with colorless last.
var colorOrder = map[string]int{"W": 0, "U": 1, "B": 2, "R": 3, "G": 4, "C": 5}

func reportData(site *export.Site) charts.Report {
	colors := lo.Keys(site.Meta.ColorDistribution)
	sort.Slice(colors, func(i, j int) bool {
		oi, okI := colorOrder[colors[i]]
		oj, okJ := colorOrder[colors[j]]
		if okI != okJ {
			return okI
		}
		if oi != oj {
			return oi < oj
		}
		return colors[i] < colors[j]
	})

	commanderPoint := func(c export.CommanderSummary, _ int) charts.DataPoint {
		return charts.DataPoint{Label: c.Name, Value: float64(c.DeckCount)}
	}

	return charts.Report{
		Title: "Commander statistics " + site.Meta.LastUpdated,
		ColorDistribution: lo.Map(colors, func(c string, _ int) charts.DataPoint {
			return charts.DataPoint{Label: c, Value: float64(site.Meta.ColorDistribution[c])}
		}),
		TopCommanders: lo.Map(firstN(site.Commanders, reportTopN), commanderPoint),
		RecentCommanders: lo.Map(firstN(site.Meta.Top20Recent, reportTopN), func(c export.CommanderSummary, _ int) charts.DataPoint {
			return charts.DataPoint{Label: c.Name, Value: float64(c.DeckCount180d)}
		}),
		TopCards: lo.Map(firstN(site.Cards, reportTopN), func(c export.CardSummary, _ int) charts.DataPoint {
			return charts.DataPoint{Label: c.Name, Value: c.TotalPct}
		}),
	}
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
