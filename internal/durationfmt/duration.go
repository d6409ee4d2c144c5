package durationfmt

import (
	"errors"
	"math"
	"time"
)

// MaxSeconds is the largest whole-second count a Duration can hold.
const MaxSeconds = math.MaxUint64

// Duration errors.
var (
	ErrNanosOutOfRange = errors.New("sub-second nanoseconds must be below 1000000000")
	ErrNegative        = errors.New("negative durations are not supported")
)

// Duration is a non-negative span of elapsed time: whole seconds plus a
// sub-second remainder in nanoseconds.
type Duration struct {
	Seconds uint64
	Nanos   uint32
}

// New returns a Duration after checking that nanos is below one second.
func New(seconds uint64, nanos uint32) (Duration, error) {
	if nanos >= NanosPerSecond {
		return Duration{}, ErrNanosOutOfRange
	}
	return Duration{Seconds: seconds, Nanos: nanos}, nil
}

// FromStd converts a time.Duration. Negative values are rejected.
func FromStd(d time.Duration) (Duration, error) {
	if d < 0 {
		return Duration{}, ErrNegative
	}
	n := uint64(d)
	return Duration{
		Seconds: n / NanosPerSecond,
		Nanos:   uint32(n % NanosPerSecond),
	}, nil
}

// FormatStd formats a non-negative time.Duration.
func FormatStd(d time.Duration) (string, error) {
	v, err := FromStd(d)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// IsZero reports whether d is the zero duration.
func (d Duration) IsZero() bool {
	return d.Seconds == 0 && d.Nanos == 0
}

// String returns the compact text form of d, e.g. "5h6m7.001s".
func (d Duration) String() string {
	return Format(d.Seconds, d.Nanos)
}
