package builder

import (
	"time"

	"github.com/joeydtaylor/spectra/pkg/internal/meter"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// Meter aggregates render metrics and samples process resource usage.
type Meter = types.Meter

// NewMeter creates a meter with specified options.
func NewMeter(options ...types.Option[types.Meter]) types.Meter {
	return meter.NewMeter(options...)
}

// MeterWithLogger adds a logger to the Meter.
func MeterWithLogger(logger ...types.Logger) types.Option[types.Meter] {
	return meter.WithLogger(logger...)
}

// MeterWithSampleInterval sets how often resource usage is sampled.
func MeterWithSampleInterval(d time.Duration) types.Option[types.Meter] {
	return meter.WithSampleInterval(d)
}

// MeterWithComponentMetadata adds component metadata overrides.
func MeterWithComponentMetadata(name string, id string) types.Option[types.Meter] {
	return meter.WithComponentMetadata(name, id)
}
