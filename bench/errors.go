package bench

import "errors"

var (
	// ErrLoadFailure is returned when a drawing program cannot be loaded.
	// It aborts the current file only.
	ErrLoadFailure = errors.New("bench: load failure")

	// ErrOutOfRange is returned when a sample is recorded past the end of
	// its buffer. It indicates a bug in phase bookkeeping.
	ErrOutOfRange = errors.New("bench: sample index out of range")

	// ErrEmptyBuffer is returned when summarizing a buffer with no samples.
	ErrEmptyBuffer = errors.New("bench: empty sample buffer")

	// ErrInvalidCalibration is returned by Calibration.Validate.
	ErrInvalidCalibration = errors.New("bench: invalid calibration")
)
