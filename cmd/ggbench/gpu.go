//go:build gpu

package main

// GPU acceleration registers itself with gg when linked in.
import _ "github.com/gogpu/gg/gpu"
