package builder

import (
	"github.com/joeydtaylor/spectra/pkg/internal/spectrum"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// Analyzer performs the forward transform from a sample buffer to band magnitudes.
type Analyzer = spectrum.Analyzer

// Transform is one computed spectrum with its derived dB views.
type Transform = spectrum.Transform

// WindowFunc generates window coefficients for a frame length.
type WindowFunc = spectrum.WindowFunc

// NoiseFloorDB is the clamp applied to silent bands in dB space.
const NoiseFloorDB = spectrum.NoiseFloorDB

// ErrBufferSize reports a frame that does not match the configured buffer size.
var ErrBufferSize = spectrum.ErrBufferSize

// NewAnalyzer creates an analyzer sized to the given configuration.
func NewAnalyzer(cfg AudioConfig, options ...types.Option[*Analyzer]) (*Analyzer, error) {
	return spectrum.NewAnalyzer(cfg, options...)
}

// AnalyzerWithWindow sets the window applied before the transform.
func AnalyzerWithWindow(w WindowFunc) types.Option[*Analyzer] {
	return spectrum.WithWindow(w)
}
