package builder

import (
	"github.com/joeydtaylor/spectra/pkg/internal/mixer"
	"github.com/joeydtaylor/spectra/pkg/internal/signal"
	"github.com/joeydtaylor/spectra/pkg/internal/spectrum"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// Mixer aggregates signals into a summed buffer and its spectrum transform.
type Mixer = mixer.Mixer

// Sentinel errors surfaced by mixer operations.
var (
	ErrEmptyMixer     = mixer.ErrEmptyMixer
	ErrSignalNotFound = mixer.ErrSignalNotFound
)

// NewMixer creates a mixer for the given audio configuration.
func NewMixer(cfg AudioConfig, options ...types.Option[*Mixer]) *Mixer {
	return mixer.NewMixer(cfg, options...)
}

// MixerWithLogger adds a logger to the Mixer.
func MixerWithLogger(logger ...types.Logger) types.Option[*Mixer] {
	return mixer.WithLogger(logger...)
}

// MixerWithSensor attaches sensors that receive the mixer's broadcasts.
func MixerWithSensor(s ...types.Sensor) types.Option[*Mixer] {
	return mixer.WithSensor(s...)
}

// MixerWithSignal seeds the mixer with signals at construction time.
func MixerWithSignal(s ...*signal.Signal) types.Option[*Mixer] {
	return mixer.WithSignal(s...)
}

// MixerWithWindow sets the window applied before the forward transform.
func MixerWithWindow(w spectrum.WindowFunc) types.Option[*Mixer] {
	return mixer.WithWindow(w)
}

// MixerWithComponentMetadata adds component metadata overrides.
func MixerWithComponentMetadata(name string, id string) types.Option[*Mixer] {
	return mixer.WithComponentMetadata(name, id)
}
