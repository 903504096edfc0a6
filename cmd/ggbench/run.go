package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/ggbench/bench"
	"github.com/gogpu/ggbench/config"
	"github.com/gogpu/ggbench/driver"
	"github.com/gogpu/ggbench/metrics"
	"github.com/gogpu/ggbench/playback"
	"github.com/gogpu/ggbench/report"
	"github.com/gogpu/ggbench/scenes"
	"github.com/spf13/cobra"
)

type frameRunner interface {
	Run(ctx context.Context, fn driver.Frame) (int, error)
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("out") {
		cfg.Output.Dir = outDir
	}
	if changed("width") {
		cfg.Window.Width = width
	}
	if changed("height") {
		cfg.Window.Height = height
	}
	if changed("fps") {
		cfg.Window.TargetFPS = fps
	}
	if changed("metrics-addr") {
		cfg.Metrics.Addr = metricsAddr
	}
	if changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if changed("warmup-min") {
		cfg.Calibration.WarmupLoopsMin = warmupMin
	}
	if changed("warmup-max") {
		cfg.Calibration.WarmupLoopsMax = warmupMax
	}
	if changed("min-loops") {
		cfg.Calibration.TestMinLoops = minLoops
	}
	if changed("min-duration") {
		cfg.Calibration.TestMinDuration = minDuration
	}
	if changed("no-hud") {
		cfg.Window.HUD = !noHUD
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(cfg *config.Config) error {
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	bench.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// newSurface allocates the window-sized surface cleared to the configured
// background.
func newSurface(cfg *config.Config) (*playback.Surface, error) {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	s := playback.NewSurface(cfg.Window.Width, cfg.Window.Height)
	s.SetBackground(bg)
	return s, nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupLogger(cfg); err != nil {
		return err
	}
	log := bench.Logger()

	entries := args
	if len(entries) == 0 {
		entries = cfg.Files
	}
	handles, err := scenes.Enumerate(entries)
	if err != nil {
		return err
	}

	runID := report.NewRunID()
	out, err := report.NewWriter(cfg.Output.Dir, runID)
	if err != nil {
		return err
	}

	surface, err := newSurface(cfg)
	if err != nil {
		return err
	}
	defer surface.Close()

	var hud *playback.HUD
	if cfg.Window.HUD {
		hud, err = playback.NewHUD(cfg.Window.FontSize)
		if err != nil {
			return err
		}
		defer hud.Close()
		surface.SetFont(hud.Face())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	observers := bench.Observers{}
	if cfg.Metrics.Addr != "" {
		collector := metrics.NewCollector(runID)
		observers = append(observers, collector)
		go func() {
			if err := collector.Serve(ctx, cfg.Metrics.Addr); err != nil {
				log.Error("metrics server failed", "addr", cfg.Metrics.Addr, "err", err)
			}
		}()
		log.Info("serving metrics", "addr", cfg.Metrics.Addr)
	}

	agg := bench.NewAggregator()
	b := bench.New(bench.NewFileList(handles...), scenes.Loader{}, surface,
		bench.WithCalibration(cfg.Calibration.Bench()),
		bench.WithAggregator(agg),
		bench.WithObserver(observers),
		bench.WithAngleStep(cfg.Animation.AngleStep),
		bench.WithGCBeforeFile(cfg.Calibration.GCBeforeTest),
	)

	frame := func(now, elapsed int64) bool {
		surface.Clear()
		done := b.AdvanceFrame(now, elapsed)
		if hud != nil {
			hud.Draw(surface, b.FrameRate())
		}
		return done
	}

	var runner frameRunner = driver.NewTicker(cfg.Window.TargetFPS)
	if useWindow {
		runner, err = newWindowRunner(cfg, surface)
		if err != nil {
			return err
		}
	}

	log.Info("benchmark started", "run", runID, "files", len(handles),
		"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))
	frames, err := runner.Run(ctx, frame)
	switch {
	case errors.Is(err, context.Canceled):
		log.Warn("benchmark interrupted", "frames", frames)
	case err != nil:
		return err
	case !b.Done():
		log.Warn("window closed before the benchmark finished", "frames", frames)
	}

	styled := report.IsTerminal(os.Stdout)
	if err := report.WriteSummary(os.Stdout, agg, styled); err != nil {
		return err
	}
	if err := report.WriteFailures(os.Stdout, b.Failures(), styled); err != nil {
		return err
	}

	if err := out.WriteConfig(cfg); err != nil {
		return err
	}
	if err := out.WriteResults(agg, cfg.Output.CSV, cfg.Output.Chart); err != nil {
		return err
	}
	if cfg.Output.Snapshot {
		if err := out.WriteSnapshot(surface.Image()); err != nil {
			return err
		}
	}
	if dir := out.Dir(); dir != "" {
		log.Info("results written", "dir", dir)
	}
	return nil
}
