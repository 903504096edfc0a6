// Command ggbench measures how fast gg renders a list of drawing programs.
//
// Each program is replayed once per frame while the harness calibrates
// iteration counts, then timed for a fixed duration. The median and 95th
// percentile frame times of every file are printed and averaged into a
// score.
//
//	ggbench run                      # built-in scenes
//	ggbench run maps/ extra.yaml     # YAML scenes
//	ggbench run --out results --metrics-addr :9090
//	ggbench scenes
//	ggbench snapshot builtin:map -o map.png
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
