// Package spectrum wraps the forward FFT and the spectrum-to-decibel pipeline.
// The transform itself is delegated to go-dsp; this package owns frame validation,
// windowing, magnitude scaling and peak normalization.
package spectrum

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// WindowFunc produces the window coefficients for a frame of the given length.
// It matches the go-dsp/window constructors (window.Hann, window.Hamming, ...).
type WindowFunc func(int) []float64

// ErrBufferSize reports a frame whose length does not match the analyzer's
// configured buffer size.
var ErrBufferSize = errors.New("spectrum: frame length does not match buffer size")

// Analyzer computes frequency-domain transforms for frames sized to one AudioConfig.
type Analyzer struct {
	cfg    types.AudioConfig
	window WindowFunc
}

// NewAnalyzer constructs an analyzer for the given configuration. The default
// window is rectangular, so composed buffers pass through unchanged.
func NewAnalyzer(cfg types.AudioConfig, options ...types.Option[*Analyzer]) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Analyzer{cfg: cfg, window: window.Rectangular}
	for _, opt := range options {
		opt(a)
	}
	return a, nil
}

// WithWindow overrides the analyzer's window function.
func WithWindow(w WindowFunc) types.Option[*Analyzer] {
	return func(a *Analyzer) {
		if w != nil {
			a.window = w
		}
	}
}

// Config returns the audio configuration the analyzer was built with.
func (a *Analyzer) Config() types.AudioConfig {
	return a.cfg
}

// Forward runs the windowed forward transform on one frame and returns the
// per-band magnitude spectrum (length BufferSize/2), scaled by 2/BufferSize so a
// full-scale sine lands at magnitude ~1.
func (a *Analyzer) Forward(buf []float64) (*Transform, error) {
	if len(buf) != a.cfg.BufferSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBufferSize, len(buf), a.cfg.BufferSize)
	}

	frame := make([]float64, len(buf))
	copy(frame, buf)
	window.Apply(frame, a.window)

	bins := fft.FFTReal(frame)
	scale := 2 / float64(a.cfg.BufferSize)

	mags := make([]float64, a.cfg.Bands())
	for k := range mags {
		mags[k] = scale * cmplx.Abs(bins[k])
	}
	return &Transform{Spectrum: mags, cfg: a.cfg}, nil
}
