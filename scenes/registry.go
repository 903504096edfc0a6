package scenes

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gg/recording"
)

// Generator records a built-in scene.
type Generator func() *recording.Recording

var (
	registryMu sync.RWMutex
	generators = make(map[string]Generator)
)

// Register makes a generator available under name. It panics if g is nil
// or name is already taken, so clashes surface at init time.
func Register(name string, g Generator) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if g == nil {
		panic("scenes: Register generator is nil")
	}
	if _, dup := generators[name]; dup {
		panic("scenes: Register called twice for " + name)
	}
	generators[name] = g
}

// Unregister removes a scene. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(generators, name)
}

// IsRegistered reports whether name is a known scene.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := generators[name]
	return ok
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate records the scene registered under name.
func Generate(name string) (*recording.Recording, error) {
	registryMu.RLock()
	g, ok := generators[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("scenes: unknown scene %q", name)
	}
	return g(), nil
}
