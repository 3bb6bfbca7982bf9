package signal

import "github.com/joeydtaylor/spectra/pkg/internal/types"

// WithWaveform sets the signal's waveform kind.
func WithWaveform(kind types.Waveform) types.Option[*Signal] {
	return func(s *Signal) {
		s.Apply(kind, s.Frequency(), s.Amplitude())
	}
}

// WithFrequency sets the signal's frequency in Hz, clamped to [MinFrequency, Nyquist].
func WithFrequency(hz float64) types.Option[*Signal] {
	return func(s *Signal) {
		s.Apply(s.Waveform(), hz, s.Amplitude())
	}
}

// WithAmplitude sets the signal's amplitude, clamped to [0, MaxAmplitude].
func WithAmplitude(amp float64) types.Option[*Signal] {
	return func(s *Signal) {
		s.Apply(s.Waveform(), s.Frequency(), amp)
	}
}

// WithComponentMetadata adds component metadata overrides.
func WithComponentMetadata(name string, id string) types.Option[*Signal] {
	return func(s *Signal) {
		s.SetComponentMetadata(name, id)
	}
}
