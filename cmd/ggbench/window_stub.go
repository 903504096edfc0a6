//go:build !raylib

package main

import (
	"errors"

	"github.com/gogpu/ggbench/config"
	"github.com/gogpu/ggbench/playback"
)

func newWindowRunner(*config.Config, *playback.Surface) (frameRunner, error) {
	return nil, errors.New("ggbench: built without window support, rebuild with -tags raylib")
}
