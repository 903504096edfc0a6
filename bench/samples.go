package bench

import "fmt"

// Sample is one measured iteration.
type Sample struct {
	Ops          int64
	ElapsedNanos int64
}

// Samples is the fixed-capacity timing buffer of one phase. Slots are
// addressed by iteration index and written once, then the whole buffer is
// summarized.
type Samples struct {
	data []Sample
}

// NewSamples allocates a buffer of exactly n slots.
func NewSamples(n int) *Samples {
	if n < 0 {
		n = 0
	}
	return &Samples{data: make([]Sample, n)}
}

// Record writes slot index.
func (s *Samples) Record(index int, ops, elapsedNanos int64) error {
	if index < 0 || index >= len(s.data) {
		return fmt.Errorf("%w: index %d, capacity %d", ErrOutOfRange, index, len(s.data))
	}
	s.data[index] = Sample{Ops: ops, ElapsedNanos: elapsedNanos}
	return nil
}

// IsFull reports whether index is past the last slot, which is how the state
// machine detects the end of a phase.
func (s *Samples) IsFull(index int) bool {
	return index >= len(s.data)
}

// Len returns the capacity of the buffer.
func (s *Samples) Len() int {
	return len(s.data)
}

// At returns the sample in slot i.
func (s *Samples) At(i int) Sample {
	return s.data[i]
}
