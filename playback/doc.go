// Package playback replays recorded drawing programs onto a persistent
// window surface.
//
// Recordings produced by gg's recording.Recorder store geometry that is
// already in world coordinates. A Surface applies one extra view matrix,
// set per frame by the benchmark, to every path it receives, so the same
// recording can be centered and rotated without being re-recorded.
//
//	surface := playback.NewSurface(1800, 900)
//	prog := playback.NewProgram("map", rec)
//	prog.Execute(surface, gg.Translate(-100, 0))
//	img := surface.Image()
package playback
