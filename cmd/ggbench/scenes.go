package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster"
	"github.com/gogpu/ggbench/scenes"
	"github.com/spf13/cobra"
)

func listScenes(*cobra.Command, []string) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tHANDLE\tSIZE\tCOMMANDS")
	for _, h := range scenes.BuiltinHandles() {
		rec, err := scenes.Record(h)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%d\n", h.Name, h.Path, rec.Width(), rec.Height(), len(rec.Commands()))
	}
	return tw.Flush()
}

// snapshot renders one scene with the raster recording backend.
func snapshot(_ *cobra.Command, args []string) error {
	handles, err := scenes.Enumerate(args)
	if err != nil {
		return err
	}
	rec, err := scenes.Record(handles[0])
	if err != nil {
		return err
	}

	backend, err := recording.NewBackend("raster")
	if err != nil {
		return err
	}
	if err := rec.Playback(backend); err != nil {
		return err
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("raster backend cannot save files")
	}
	if err := fb.SaveToFile(snapshotOut); err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d -> %s\n", handles[0].Name, rec.Width(), rec.Height(), snapshotOut)
	return nil
}
