// Package config loads the benchmark configuration.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggbench/bench"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every benchmark setting.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Calibration CalibrationConfig `yaml:"calibration"`
	Animation   AnimationConfig   `yaml:"animation"`
	Files       []string          `yaml:"files"`
	Output      OutputConfig      `yaml:"output"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Log         LogConfig         `yaml:"log"`
}

// WindowConfig holds the render target settings.
type WindowConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	TargetFPS  int     `yaml:"target_fps"`
	Background string  `yaml:"background"`
	HUD        bool    `yaml:"hud"`
	FontSize   float64 `yaml:"font_size"`
}

// CalibrationConfig mirrors bench.Calibration.
type CalibrationConfig struct {
	WarmupLoopsMin  int           `yaml:"warmup_loops_min"`
	WarmupLoopsMax  int           `yaml:"warmup_loops_max"`
	TestMinLoops    int           `yaml:"test_min_loops"`
	TestMaxLoops    int           `yaml:"test_max_loops"`
	TestMinDuration time.Duration `yaml:"test_min_duration"`
	ProbeLoops      int           `yaml:"probe_loops"`
	Margin          float64       `yaml:"margin"`
	GCBeforeTest    bool          `yaml:"gc_before_test"` // collect garbage before each file
}

// AnimationConfig holds the per-frame rotation.
type AnimationConfig struct {
	AngleStep float64 `yaml:"angle_step"` // radians
}

// OutputConfig selects the report files.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	CSV      bool   `yaml:"csv"`
	Chart    bool   `yaml:"chart"`
	Snapshot bool   `yaml:"snapshot"`
}

// MetricsConfig holds the prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig holds the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads the embedded defaults and overlays the file at path, if any.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	return cfg, nil
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

// Validate checks the settings that would otherwise fail later.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("config: negative target_fps %d", c.Window.TargetFPS)
	}
	if c.Window.HUD && c.Window.FontSize <= 0 {
		return fmt.Errorf("config: font_size %g must be positive", c.Window.FontSize)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	if err := c.Calibration.Bench().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if math.IsNaN(c.Animation.AngleStep) || math.IsInf(c.Animation.AngleStep, 0) {
		return fmt.Errorf("config: angle_step %g is not finite", c.Animation.AngleStep)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// Bench converts the section to the policy bounds used by bench.
func (c CalibrationConfig) Bench() bench.Calibration {
	return bench.Calibration{
		WarmupLoopsMin:  c.WarmupLoopsMin,
		WarmupLoopsMax:  c.WarmupLoopsMax,
		TestMinLoops:    c.TestMinLoops,
		TestMaxLoops:    c.TestMaxLoops,
		TestMinDuration: c.TestMinDuration,
		ProbeLoops:      c.ProbeLoops,
		Margin:          c.Margin,
	}
}

// BackgroundColor parses window.background.
func (c *Config) BackgroundColor() (gg.RGBA, error) {
	hex := strings.TrimPrefix(c.Window.Background, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("config: bad background color %q", c.Window.Background)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("config: bad background color %q", c.Window.Background)
		}
	}
	return gg.Hex(hex), nil
}

// SlogLevel parses log.level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return l, nil
}

// Marshal encodes the effective configuration.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteYAML writes the effective configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
