// Package signal holds the parameter model for one oscillator: its waveform kind,
// frequency and amplitude. A Signal is mutable in place, identified by a stable id
// assigned at construction, and owned by the mixer that aggregates it.
package signal

import (
	"sync"

	"github.com/joeydtaylor/spectra/pkg/internal/oscillator"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
	"github.com/joeydtaylor/spectra/pkg/internal/utils"
)

const (
	DefaultFrequency = 400.0
	DefaultAmplitude = 1.0

	// MinFrequency keeps the frequency strictly positive; a 0 Hz oscillator
	// never advances its phase.
	MinFrequency = 1.0

	// MaxAmplitude mirrors the bound the control surface imposes on its sliders.
	MaxAmplitude = 100.0
)

// Signal is one oscillator configuration. All parameter access is mutex-guarded;
// parameters are clamped to their control-surface bounds on every write.
type Signal struct {
	componentMetadata types.ComponentMetadata
	cfg               types.AudioConfig

	mu        sync.Mutex
	waveform  types.Waveform
	frequency float64
	amplitude float64
}

// NewSignal constructs a signal with the standard defaults (sine, 400 Hz, amplitude 1.0),
// then applies any options.
func NewSignal(cfg types.AudioConfig, options ...types.Option[*Signal]) *Signal {
	s := &Signal{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SIGNAL",
		},
		cfg:       cfg,
		waveform:  types.WaveformSine,
		frequency: DefaultFrequency,
		amplitude: DefaultAmplitude,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// ID returns the signal's stable identity.
func (s *Signal) ID() string {
	return s.componentMetadata.ID
}

// GetComponentMetadata returns the signal metadata.
func (s *Signal) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

// SetComponentMetadata overrides the signal's name and id.
func (s *Signal) SetComponentMetadata(name string, id string) {
	s.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: s.componentMetadata.Type}
}

// Waveform returns the current waveform kind.
func (s *Signal) Waveform() types.Waveform {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waveform
}

// Frequency returns the current frequency in Hz.
func (s *Signal) Frequency() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frequency
}

// Amplitude returns the current amplitude.
func (s *Signal) Amplitude() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.amplitude
}

// Apply sets all three parameters atomically, clamping frequency to
// [MinFrequency, Nyquist] and amplitude to [0, MaxAmplitude]. It reports whether
// anything changed, which lets the mixer skip broadcasts for no-op commits.
func (s *Signal) Apply(kind types.Waveform, frequency, amplitude float64) bool {
	frequency = utils.Clamp(frequency, MinFrequency, s.cfg.Nyquist())
	amplitude = utils.Clamp(amplitude, 0, MaxAmplitude)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waveform == kind && s.frequency == frequency && s.amplitude == amplitude {
		return false
	}
	s.waveform = kind
	s.frequency = frequency
	s.amplitude = amplitude
	return true
}

// Snapshot returns an immutable view of the current parameters for notification
// payloads and API responses.
func (s *Signal) Snapshot() types.SignalSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.SignalSnapshot{
		ID:        s.componentMetadata.ID,
		Waveform:  s.waveform,
		Kind:      s.waveform.String(),
		Frequency: s.frequency,
		Amplitude: s.amplitude,
	}
}

// Oscillator constructs a fresh oscillator configured with the signal's current
// parameters. Pure accessor: no side effects beyond allocation, never cached.
func (s *Signal) Oscillator() *oscillator.Oscillator {
	s.mu.Lock()
	kind, freq, amp := s.waveform, s.frequency, s.amplitude
	s.mu.Unlock()
	return oscillator.New(kind, freq, amp, s.cfg)
}
