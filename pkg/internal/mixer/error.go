package mixer

import "errors"

// ErrEmptyMixer is returned when an aggregate signal or transform is requested
// from a mixer that holds no signals. The historical behavior was undefined;
// here it is an explicit, documented error.
var ErrEmptyMixer = errors.New("mixer: no signals to aggregate")

// ErrSignalNotFound is returned when an operation names a signal id the mixer
// does not hold.
var ErrSignalNotFound = errors.New("mixer: signal not found")
