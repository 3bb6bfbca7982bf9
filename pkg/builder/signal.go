package builder

import (
	"github.com/joeydtaylor/spectra/pkg/internal/signal"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// Signal is one oscillator voice with mutable parameters.
type Signal = signal.Signal

// Parameter bounds shared with the control surface.
const (
	DefaultFrequency = signal.DefaultFrequency
	DefaultAmplitude = signal.DefaultAmplitude
	MinFrequency     = signal.MinFrequency
	MaxAmplitude     = signal.MaxAmplitude
)

// NewSignal creates a signal with the default sine/400 Hz/1.0 parameters.
func NewSignal(cfg AudioConfig, options ...types.Option[*Signal]) *Signal {
	return signal.NewSignal(cfg, options...)
}

// SignalWithWaveform sets the initial waveform kind.
func SignalWithWaveform(kind Waveform) types.Option[*Signal] {
	return signal.WithWaveform(kind)
}

// SignalWithFrequency sets the initial frequency in Hz.
func SignalWithFrequency(frequency float64) types.Option[*Signal] {
	return signal.WithFrequency(frequency)
}

// SignalWithAmplitude sets the initial amplitude.
func SignalWithAmplitude(amplitude float64) types.Option[*Signal] {
	return signal.WithAmplitude(amplitude)
}

// SignalWithComponentMetadata adds component metadata overrides.
func SignalWithComponentMetadata(name string, id string) types.Option[*Signal] {
	return signal.WithComponentMetadata(name, id)
}
