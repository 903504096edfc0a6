package bench

import (
	"errors"
	"testing"
)

func TestSamplesRecord(t *testing.T) {
	s := NewSamples(3)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	for i := 0; i < 3; i++ {
		if s.IsFull(i) {
			t.Errorf("IsFull(%d) = true before the end", i)
		}
		if err := s.Record(i, 1, int64(10*(i+1))); err != nil {
			t.Fatalf("Record(%d) error = %v", i, err)
		}
	}
	if !s.IsFull(3) {
		t.Error("IsFull(3) = false, want true")
	}
	if got := s.At(2); got != (Sample{Ops: 1, ElapsedNanos: 30}) {
		t.Errorf("At(2) = %+v", got)
	}
}

func TestSamplesOutOfRange(t *testing.T) {
	s := NewSamples(2)
	for _, idx := range []int{-1, 2, 10} {
		err := s.Record(idx, 1, 1)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Record(%d) error = %v, want ErrOutOfRange", idx, err)
		}
	}
}

func TestSamplesZeroCapacity(t *testing.T) {
	s := NewSamples(0)
	if !s.IsFull(0) {
		t.Error("empty buffer should be full at index 0")
	}
	if s := NewSamples(-5); s.Len() != 0 {
		t.Errorf("NewSamples(-5).Len() = %d, want 0", s.Len())
	}
}
