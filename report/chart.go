package report

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/gogpu/ggbench/bench"
)

// NewChart builds a bar chart of median and 95th percentile frame times per
// file.
func NewChart(title string, results []bench.FileResult) *charts.Bar {
	names := make([]string, len(results))
	med := make([]opts.BarData, len(results))
	p95 := make([]opts.BarData, len(results))
	for i, fr := range results {
		names[i] = fr.File
		med[i] = opts.BarData{Value: fr.Result.MedianMillis()}
		p95[i] = opts.BarData{Value: fr.Result.Percentile95Millis()}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "time per frame, lower is better",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
	)
	bar.SetXAxis(names).
		AddSeries("Med", med).
		AddSeries("Pct95", p95)
	return bar
}

// WriteChart renders the chart as a standalone HTML page.
func WriteChart(w io.Writer, title string, results []bench.FileResult) error {
	page := components.NewPage()
	page.AddCharts(NewChart(title, results))
	return page.Render(w)
}
