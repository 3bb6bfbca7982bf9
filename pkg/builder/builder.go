// Package builder is the public facade of the library. It re-exports the
// internal component constructors and their options under one import so an
// application can assemble a composer without reaching into pkg/internal.
package builder

import (
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// ComponentMetadata identifies a component instance.
type ComponentMetadata = types.ComponentMetadata

// Option configures a component of type T at construction time.
type Option[T any] = types.Option[T]

// AudioConfig carries the sampling parameters shared by every component.
type AudioConfig = types.AudioConfig

// Waveform identifies an oscillator shape.
type Waveform = types.Waveform

// SignalSnapshot is the immutable view of one signal's parameters.
type SignalSnapshot = types.SignalSnapshot

// MeterSnapshot is a point-in-time view of pipeline health.
type MeterSnapshot = types.MeterSnapshot

const (
	WaveformSine     = types.WaveformSine
	WaveformTriangle = types.WaveformTriangle
	WaveformSaw      = types.WaveformSaw
	WaveformSquare   = types.WaveformSquare
	WaveformNoise    = types.WaveformNoise
)

// DefaultAudioConfig returns the standard 2048-sample, 44100 Hz configuration.
func DefaultAudioConfig() AudioConfig {
	return types.DefaultAudioConfig()
}

// ParseWaveform converts a textual waveform kind into a Waveform.
func ParseWaveform(s string) (Waveform, error) {
	return types.ParseWaveform(s)
}
