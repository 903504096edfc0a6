package report

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gogpu/ggbench/bench"
	"github.com/gogpu/ggbench/config"
	"github.com/google/uuid"
)

// File names inside the output directory.
const (
	ResultsFile  = "results.csv"
	ChartFile    = "chart.html"
	ScoresFile   = "scores.txt"
	ConfigFile   = "config.yaml"
	SnapshotFile = "snapshot.png"
)

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Writer stores the reports of one run in a directory. A nil *Writer
// discards everything, so callers need not check whether output is enabled.
type Writer struct {
	dir   string
	runID string
}

// NewWriter creates dir and returns a writer for it. It returns nil, nil
// when dir is empty.
func NewWriter(dir, runID string) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{dir: dir, runID: runID}, nil
}

// Dir returns the output directory, or "" for a nil writer.
func (w *Writer) Dir() string {
	if w == nil {
		return ""
	}
	return w.dir
}

// RunID returns the identifier stamped on exported rows.
func (w *Writer) RunID() string {
	if w == nil {
		return ""
	}
	return w.runID
}

// WriteConfig saves the effective configuration.
func (w *Writer) WriteConfig(cfg *config.Config) error {
	if w == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(w.dir, ConfigFile))
}

// WriteResults saves the logs and score table, and optionally the CSV and
// chart.
func (w *Writer) WriteResults(agg *bench.Aggregator, csv, chart bool) error {
	if w == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, agg, false); err != nil {
		return err
	}
	if err := w.writeFile(ScoresFile, buf.Bytes()); err != nil {
		return err
	}

	results := agg.Results()
	if csv {
		buf.Reset()
		if err := WriteCSV(&buf, w.runID, results); err != nil {
			return err
		}
		if err := w.writeFile(ResultsFile, buf.Bytes()); err != nil {
			return err
		}
	}
	if chart {
		buf.Reset()
		if err := WriteChart(&buf, "ggbench "+w.runID, results); err != nil {
			return fmt.Errorf("rendering chart: %w", err)
		}
		if err := w.writeFile(ChartFile, buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// WriteSnapshot saves img as a PNG.
func (w *Writer) WriteSnapshot(img image.Image) error {
	if w == nil || img == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return w.writeFile(SnapshotFile, buf.Bytes())
}

func (w *Writer) writeFile(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(w.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
