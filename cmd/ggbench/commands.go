package main

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	outDir      string
	width       int
	height      int
	fps         int
	metricsAddr string
	logLevel    string
	useWindow   bool
	warmupMin   int
	warmupMax   int
	minLoops    int
	minDuration time.Duration
	noHUD       bool

	snapshotOut string

	rootCmd = &cobra.Command{
		Use:           "ggbench",
		Short:         "Adaptive rendering benchmark for gg",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	runCmd = &cobra.Command{
		Use:   "run [file|dir|builtin:name...]",
		Short: "Benchmark scenes and print per-file results and the score",
		RunE:  runBench,
	}

	scenesCmd = &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Args:  cobra.NoArgs,
		RunE:  listScenes,
	}

	snapshotCmd = &cobra.Command{
		Use:   "snapshot <file|builtin:name>",
		Short: "Render one scene once to a PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshot,
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML config applied over the defaults")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	for _, cmd := range []*cobra.Command{runCmd, configCmd} {
		f := cmd.Flags()
		f.StringVarP(&outDir, "out", "o", "", "directory for results.csv, chart.html, scores.txt")
		f.IntVar(&width, "width", 0, "window width")
		f.IntVar(&height, "height", 0, "window height")
		f.IntVar(&fps, "fps", 0, "target frame rate, 0 for back to back frames")
		f.StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
		f.BoolVar(&useWindow, "window", false, "render in a window (raylib builds only)")
		f.IntVar(&warmupMin, "warmup-min", 0, "loops of the first boot warmup round")
		f.IntVar(&warmupMax, "warmup-max", 0, "upper bound of boot warmup loops")
		f.IntVar(&minLoops, "min-loops", 0, "minimum measured loops")
		f.DurationVar(&minDuration, "min-duration", 0, "target duration of each measured run")
		f.BoolVar(&noHUD, "no-hud", false, "do not draw the frame rate label")
	}

	snapshotCmd.Flags().StringVarP(&snapshotOut, "output", "o", "snapshot.png", "output PNG")

	rootCmd.AddCommand(runCmd, scenesCmd, snapshotCmd, configCmd)
}
