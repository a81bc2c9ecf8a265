// Package charts renders the optional HTML report that accompanies a build.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ReportFile is the file name of the HTML report inside the report directory.
const ReportFile = "report.html"

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title      string   // Chart title
	Subtitle   string   // Chart subtitle
	SeriesName string   // Legend entry for the single series
	Width      string   // Chart width (e.g., "900px")
	Height     string   // Chart height (e.g., "500px")
	Theme      string   // Chart theme
	ShowLegend bool     // Show legend
	Colors     []string // Custom colors
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:      "1000px",
		Height:     "500px",
		Theme:      "light",
		ShowLegend: false,
		Colors:     []string{"#5470C6", "#91CC75", "#FAC858", "#EE6666", "#73C0DE", "#3BA272", "#FC8452", "#9A60B4", "#EA7CCC"},
	}
}

// DataPoint represents a single data point in a chart.
type DataPoint struct {
	Label string
	Value float64
}

// ManaColors maps color identity symbols to the colors used for them in the report.
var ManaColors = map[string]string{
	"W": "#F8E7B9",
	"U": "#0E68AB",
	"B": "#3D3229",
	"R": "#D3202A",
	"G": "#00733E",
}

func globalOptions(config ChartConfig) []charts.GlobalOpts {
	colors := config.Colors
	if len(colors) == 0 {
		colors = DefaultChartConfig().Colors
	}
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(config.ShowLegend),
		}),
		charts.WithColorsOpts(opts.Colors(colors)),
	}
}

// NewBarChart builds a single-series bar chart. Long labels are rotated.
func NewBarChart(data []DataPoint, config ChartConfig) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(config)...)
	bar.SetGlobalOptions(charts.WithXAxisOpts(opts.XAxis{
		AxisLabel: &opts.AxisLabel{Rotate: 40, Interval: "0"},
	}))

	xLabels := make([]string, len(data))
	yData := make([]opts.BarData, len(data))
	for i, point := range data {
		xLabels[i] = point.Label
		yData[i] = opts.BarData{Value: point.Value}
	}

	bar.SetXAxis(xLabels).
		AddSeries(config.SeriesName, yData).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	return bar
}

// NewColorChart builds a bar chart with one bar per color symbol, each in its mana color.
func NewColorChart(data []DataPoint, config ChartConfig) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(config)...)

	xLabels := make([]string, len(data))
	yData := make([]opts.BarData, len(data))
	for i, point := range data {
		xLabels[i] = point.Label
		item := opts.BarData{Value: point.Value}
		if c, ok := ManaColors[point.Label]; ok {
			item.ItemStyle = &opts.ItemStyle{Color: c}
		}
		yData[i] = item
	}

	bar.SetXAxis(xLabels).AddSeries(config.SeriesName, yData)
	return bar
}

// RenderBarChart creates an interactive bar chart HTML file.
func RenderBarChart(data []DataPoint, config ChartConfig, outputPath string) error {
	return renderToFile(NewBarChart(data, config), outputPath)
}

// Report is the data shown in the build report.
type Report struct {
	Title             string
	ColorDistribution []DataPoint
	TopCommanders     []DataPoint
	RecentCommanders  []DataPoint
	TopCards          []DataPoint
}

// RenderReport writes every report chart into one HTML page at dir/report.html and
// returns the file path.
func RenderReport(report Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	path := filepath.Join(dir, ReportFile)
	if err := renderToFile(newReportPage(report), path); err != nil {
		return "", err
	}
	return path, nil
}

func newReportPage(report Report) *components.Page {
	page := components.NewPage()
	page.SetPageTitle(report.Title)

	chart := func(title, series string) ChartConfig {
		c := DefaultChartConfig()
		c.Title = title
		c.SeriesName = series
		return c
	}

	page.AddCharts(
		NewColorChart(report.ColorDistribution, chart("Color distribution", "Decks")),
		NewBarChart(report.TopCommanders, chart("Most played commanders", "Decks")),
		NewBarChart(report.RecentCommanders, chart("Trending commanders (180 days)", "Decks")),
		NewBarChart(report.TopCards, chart("Most played cards", "Inclusion %")),
	)
	return page
}

type renderer interface {
	Render(w io.Writer) error
}

func renderToFile(r renderer, outputPath string) (err error) {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := r.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
