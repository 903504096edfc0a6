//go:build raylib

package main

import (
	"github.com/gogpu/ggbench/config"
	"github.com/gogpu/ggbench/driver"
	"github.com/gogpu/ggbench/playback"
)

func newWindowRunner(cfg *config.Config, s *playback.Surface) (frameRunner, error) {
	return driver.NewWindow("ggbench", cfg.Window.TargetFPS, s), nil
}
