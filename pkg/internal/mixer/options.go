package mixer

import (
	"github.com/joeydtaylor/spectra/pkg/internal/signal"
	"github.com/joeydtaylor/spectra/pkg/internal/spectrum"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// WithLogger registers loggers for the mixer.
func WithLogger(l ...types.Logger) types.Option[*Mixer] {
	return func(m *Mixer) {
		m.ConnectLogger(l...)
	}
}

// WithSensor registers sensors for the mixer's change broadcasts.
func WithSensor(s ...types.Sensor) types.Option[*Mixer] {
	return func(m *Mixer) {
		m.ConnectSensor(s...)
	}
}

// WithSignal seeds the mixer with signals at construction.
func WithSignal(s ...*signal.Signal) types.Option[*Mixer] {
	return func(m *Mixer) {
		m.Add(s...)
	}
}

// WithWindow sets the window function applied before every forward transform.
func WithWindow(w spectrum.WindowFunc) types.Option[*Mixer] {
	return func(m *Mixer) {
		m.window = w
	}
}

// WithComponentMetadata adds component metadata overrides.
func WithComponentMetadata(name string, id string) types.Option[*Mixer] {
	return func(m *Mixer) {
		m.SetComponentMetadata(name, id)
	}
}
