package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/gogpu/ggbench/bench"
)

// Row is one scored file in results.csv.
type Row struct {
	RunID        string  `csv:"run_id"`
	File         string  `csv:"file"`
	Samples      int     `csv:"samples"`
	MedianMillis float64 `csv:"median_ms"`
	Pct95Millis  float64 `csv:"pct95_ms"`
	FPS          float64 `csv:"fps"`
	TotalMillis  float64 `csv:"total_ms"`
}

// Rows flattens results for export.
func Rows(runID string, results []bench.FileResult) []Row {
	rows := make([]Row, len(results))
	for i, fr := range results {
		r := fr.Result
		rows[i] = Row{
			RunID:        runID,
			File:         fr.File,
			Samples:      r.SampleCount,
			MedianMillis: r.MedianMillis(),
			Pct95Millis:  r.Percentile95Millis(),
			FPS:          r.FPSMedian(),
			TotalMillis:  r.TotalTimeMillis,
		}
	}
	return rows
}

// WriteCSV writes one row per result, with a header.
func WriteCSV(w io.Writer, runID string, results []bench.FileResult) error {
	rows := Rows(runID, results)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

// ReadCSV parses a file written by WriteCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}
	return rows, nil
}
