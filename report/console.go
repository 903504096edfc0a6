package report

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/ggbench/bench"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	colorHeading = lipgloss.Color("#20B9B4")
	colorMuted   = lipgloss.Color("#2C4A54")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeading)
	labelStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// IsTerminal reports whether f is attached to a terminal, so styled output
// is only used interactively.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func heading(s string, styled bool) string {
	if !styled {
		return s
	}
	return headingStyle.Render(s)
}

// WriteScore writes the score summary with digit grouping that does not
// depend on the host locale.
func WriteScore(w io.Writer, s bench.ScoreSummary, styled bool) error {
	p := message.NewPrinter(language.AmericanEnglish)
	if _, err := fmt.Fprintln(w, heading("Scores:", styled)); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	rows := []struct {
		label string
		value string
	}{
		{"Tests", p.Sprintf("%d", s.Tests)},
		{"Threads", p.Sprintf("%d", s.Threads)},
		{"Med (ms)", p.Sprintf("%.3f", s.MedianMillis)},
		{"Pct95 (ms)", p.Sprintf("%.3f", s.Pct95Millis)},
		{"FPS", p.Sprintf("%.3f", s.FPS)},
	}
	for _, r := range rows {
		label := r.label
		if styled {
			label = labelStyle.Render(label)
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", label, r.value)
	}
	return tw.Flush()
}

// WriteSummary writes the warmup and test logs followed by the score.
func WriteSummary(w io.Writer, agg *bench.Aggregator, styled bool) error {
	if err := agg.WriteLogs(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return WriteScore(w, agg.Score().Mean(), styled)
}

// WriteFailures lists aborted files, one per line.
func WriteFailures(w io.Writer, failures []bench.Failure, styled bool) error {
	if len(failures) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, heading("Failures:", styled)); err != nil {
		return err
	}
	for _, f := range failures {
		if _, err := fmt.Fprintf(w, "%s\t%v\n", f.File, f.Err); err != nil {
			return err
		}
	}
	return nil
}
