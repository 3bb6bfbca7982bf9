package types

import "fmt"

// ComponentMetadata defines the essential identifying information for components within the system.
// It includes identifiers and descriptive information to help manage and differentiate components dynamically.
type ComponentMetadata struct {
	ID   string // Unique identifier for the component.
	Type string // Type of the component, used to distinguish between different classes of components.
	Name string // Human-readable name for the component.
}

// Option defines a configuration option function applicable to any component T. This generic approach
// allows for flexible configuration mechanisms across different types of components.
type Option[T any] func(T)

// AudioConfig carries the process-wide sampling parameters. It is an immutable value passed
// explicitly into every constructor that needs it; there is no global configuration state.
type AudioConfig struct {
	BufferSize int     // Samples per analysis frame. Must be a positive power of two.
	SampleRate float64 // Samples per second, in Hz.
}

// DefaultAudioConfig returns the standard 2048-sample, 44100 Hz configuration.
func DefaultAudioConfig() AudioConfig {
	return AudioConfig{BufferSize: 2048, SampleRate: 44100}
}

// Validate reports whether the configuration can drive an FFT-backed pipeline.
func (c AudioConfig) Validate() error {
	if c.BufferSize <= 0 || c.BufferSize&(c.BufferSize-1) != 0 {
		return fmt.Errorf("audio config: buffer size %d is not a positive power of two", c.BufferSize)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("audio config: sample rate %v is not positive", c.SampleRate)
	}
	return nil
}

// Nyquist returns the highest representable frequency, SampleRate/2.
func (c AudioConfig) Nyquist() float64 {
	return c.SampleRate / 2
}

// Bandwidth returns the Hz spanned by each spectrum band: 2/BufferSize * SampleRate/2.
func (c AudioConfig) Bandwidth() float64 {
	return 2 / float64(c.BufferSize) * c.SampleRate / 2
}

// BandFrequency maps a band index to the center frequency of that band.
func (c AudioConfig) BandFrequency(band int) float64 {
	bw := c.Bandwidth()
	return float64(band)*bw + bw/2
}

// Bands returns the number of spectrum bands produced per frame, BufferSize/2.
func (c AudioConfig) Bands() int {
	return c.BufferSize / 2
}
