package scenes

import (
	"slices"
	"testing"

	"github.com/gogpu/gg/recording"
)

func TestBuiltinsRegistered(t *testing.T) {
	want := []string{"circles", "ellipses-fill", "ellipses-stroke", "map", "shapes"}
	for _, name := range want {
		if !IsRegistered(name) {
			t.Errorf("scene %q not registered", name)
		}
	}
	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
}

func TestGenerateBuiltins(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			rec, err := Generate(name)
			if err != nil {
				t.Fatalf("Generate(%q): %v", name, err)
			}
			if rec.Width() <= 0 || rec.Height() <= 0 {
				t.Errorf("canvas %dx%d", rec.Width(), rec.Height())
			}
			if len(rec.Commands()) == 0 {
				t.Error("no commands recorded")
			}
		})
	}
}

func TestGenerateUnknown(t *testing.T) {
	if _, err := Generate("no-such-scene"); err == nil {
		t.Error("Generate of unknown scene succeeded")
	}
}

func TestRegisterPanics(t *testing.T) {
	t.Run("nil generator", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Register(nil) did not panic")
			}
		}()
		Register("nil-scene", nil)
	})
	t.Run("duplicate", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("duplicate Register did not panic")
			}
		}()
		Register("circles", Circles)
	})
}

func TestRegisterUnregister(t *testing.T) {
	Register("test-empty", func() *recording.Recording {
		return recording.NewRecorder(1, 1).FinishRecording()
	})
	if !IsRegistered("test-empty") {
		t.Fatal("scene not registered")
	}
	Unregister("test-empty")
	if IsRegistered("test-empty") {
		t.Error("scene still registered after Unregister")
	}
	Unregister("test-empty")
}

func TestMapDeterministic(t *testing.T) {
	a := len(Map(7).Commands())
	b := len(Map(7).Commands())
	if a != b {
		t.Errorf("same seed recorded %d and %d commands", a, b)
	}
}
