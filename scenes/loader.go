package scenes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg/recording"
	"github.com/gogpu/ggbench/bench"
	"github.com/gogpu/ggbench/playback"
)

// BuiltinPrefix marks handles that name a registered scene instead of a
// file.
const BuiltinPrefix = "builtin:"

// Loader loads built-in scenes and YAML scene files as playback programs.
type Loader struct{}

var _ bench.Loader = Loader{}

// Load implements bench.Loader. Every error wraps bench.ErrLoadFailure.
func (Loader) Load(h bench.Handle) (bench.Program, error) {
	rec, err := Record(h)
	if err != nil {
		return nil, err
	}
	return playback.NewProgram(h.Name, rec), nil
}

// Record returns the recording behind h: a generated built-in scene or a
// parsed YAML file. Every error wraps bench.ErrLoadFailure.
func Record(h bench.Handle) (*recording.Recording, error) {
	if name, ok := strings.CutPrefix(h.Path, BuiltinPrefix); ok {
		rec, err := Generate(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", bench.ErrLoadFailure, err)
		}
		return rec, nil
	}

	if !IsSceneFile(h.Path) {
		return nil, fmt.Errorf("%w: %s: unsupported file type", bench.ErrLoadFailure, h.Path)
	}
	data, err := os.ReadFile(h.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", bench.ErrLoadFailure, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", bench.ErrLoadFailure, h.Path, err)
	}
	return s.Record(), nil
}

// IsSceneFile reports whether path has a YAML extension.
func IsSceneFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Builtin returns the handle of a registered scene.
func Builtin(name string) bench.Handle {
	return bench.Handle{Name: name, Path: BuiltinPrefix + name}
}

// BuiltinHandles returns handles for every registered scene in name order.
func BuiltinHandles() []bench.Handle {
	names := Names()
	handles := make([]bench.Handle, len(names))
	for i, n := range names {
		handles[i] = Builtin(n)
	}
	return handles
}

// Enumerate turns config or command line entries into handles. Directories
// expand to their scene files sorted by name; files and builtin handles are
// kept in order. A missing file is kept so the benchmark reports it as a
// load failure.
func Enumerate(entries []string) ([]bench.Handle, error) {
	var handles []bench.Handle
	for _, e := range entries {
		if name, ok := strings.CutPrefix(e, BuiltinPrefix); ok {
			handles = append(handles, Builtin(name))
			continue
		}
		info, err := os.Stat(e)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			handles = append(handles, fileHandle(e))
		case err != nil:
			return nil, fmt.Errorf("scenes: %w", err)
		case info.IsDir():
			dir, err := os.ReadDir(e)
			if err != nil {
				return nil, fmt.Errorf("scenes: %w", err)
			}
			for _, d := range dir {
				if d.IsDir() || !IsSceneFile(d.Name()) {
					continue
				}
				handles = append(handles, fileHandle(filepath.Join(e, d.Name())))
			}
		default:
			handles = append(handles, fileHandle(e))
		}
	}
	return handles, nil
}

func fileHandle(path string) bench.Handle {
	return bench.Handle{Name: filepath.Base(path), Path: path}
}
