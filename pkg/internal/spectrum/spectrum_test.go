package spectrum_test

import (
	"math"
	"testing"

	"github.com/mjibson/go-dsp/window"

	"github.com/joeydtaylor/spectra/pkg/internal/oscillator"
	"github.com/joeydtaylor/spectra/pkg/internal/spectrum"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

func testConfig() types.AudioConfig {
	return types.AudioConfig{BufferSize: 2048, SampleRate: 44100}
}

func TestNewAnalyzerRejectsBadConfig(t *testing.T) {
	if _, err := spectrum.NewAnalyzer(types.AudioConfig{BufferSize: 1000, SampleRate: 44100}); err == nil {
		t.Error("expected error for non-power-of-two buffer size")
	}
	if _, err := spectrum.NewAnalyzer(types.AudioConfig{BufferSize: 2048, SampleRate: 0}); err == nil {
		t.Error("expected error for zero sample rate")
	}
}

func TestForwardSpectrumShape(t *testing.T) {
	cfg := testConfig()
	a, err := spectrum.NewAnalyzer(cfg)
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}

	buf := oscillator.New(types.WaveformSine, 400, 1.0, cfg).Generate()
	tr, err := a.Forward(buf)
	if err != nil {
		t.Fatalf("Forward error: %v", err)
	}
	if len(tr.Spectrum) != cfg.BufferSize/2 {
		t.Fatalf("spectrum length = %d, want %d", len(tr.Spectrum), cfg.BufferSize/2)
	}

	// The peak band should sit at ~400 Hz.
	peakBand := 0
	for i, m := range tr.Spectrum {
		if m > tr.Spectrum[peakBand] {
			peakBand = i
		}
	}
	if got := tr.BandFrequency(peakBand); math.Abs(got-400) > tr.Bandwidth() {
		t.Errorf("peak at %v Hz, want within one bandwidth of 400", got)
	}
	if tr.Spectrum[peakBand] < 0.5 {
		t.Errorf("full-scale sine peak magnitude = %v, expected order 1", tr.Spectrum[peakBand])
	}
}

func TestForwardRejectsWrongLength(t *testing.T) {
	a, err := spectrum.NewAnalyzer(testConfig())
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}
	if _, err := a.Forward(make([]float64, 17)); err == nil {
		t.Error("expected error for mismatched frame length")
	}
}

func TestForwardDoesNotMutateInput(t *testing.T) {
	cfg := testConfig()
	a, err := spectrum.NewAnalyzer(cfg, spectrum.WithWindow(window.Hann))
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}
	buf := oscillator.New(types.WaveformSquare, 250, 1.0, cfg).Generate()
	orig := append([]float64(nil), buf...)
	if _, err := a.Forward(buf); err != nil {
		t.Fatalf("Forward error: %v", err)
	}
	for i := range buf {
		if buf[i] != orig[i] {
			t.Fatalf("input buffer mutated at %d", i)
		}
	}
}

func TestBandwidth(t *testing.T) {
	cfg := testConfig()
	want := 2.0 / float64(cfg.BufferSize) * cfg.SampleRate / 2
	a, err := spectrum.NewAnalyzer(cfg)
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}
	tr, err := a.Forward(make([]float64, cfg.BufferSize))
	if err != nil {
		t.Fatalf("Forward error: %v", err)
	}
	if tr.Bandwidth() != want {
		t.Errorf("Bandwidth = %v, want %v", tr.Bandwidth(), want)
	}
	if got := tr.BandFrequency(0); got != want/2 {
		t.Errorf("BandFrequency(0) = %v, want %v", got, want/2)
	}
}

func TestDecibelsFloorsSilence(t *testing.T) {
	tr := &spectrum.Transform{Spectrum: []float64{0, 1, 0.5}}
	db := tr.Decibels()
	if db[0] != spectrum.NoiseFloorDB {
		t.Errorf("silent band = %v, want floor %v", db[0], spectrum.NoiseFloorDB)
	}
	if db[1] != 0 {
		t.Errorf("unit magnitude = %v dB, want 0", db[1])
	}
	if db[2] >= 0 || math.IsInf(db[2], -1) {
		t.Errorf("half magnitude = %v dB, want finite negative", db[2])
	}
}

func TestNormalizeToPeak(t *testing.T) {
	normalized, min := spectrum.NormalizeToPeak([]float64{-30, -10, -90})
	if normalized[1] != 0 {
		t.Errorf("peak after normalization = %v, want exactly 0", normalized[1])
	}
	if min != -80 {
		t.Errorf("min = %v, want -80", min)
	}

	// Degenerate: all-equal input collapses to a flat zero line; the returned
	// minimum must still leave a usable scale domain.
	flat, flatMin := spectrum.NormalizeToPeak([]float64{-50, -50, -50})
	for _, v := range flat {
		if v != 0 {
			t.Errorf("flat spectrum normalized to %v, want 0", v)
		}
	}
	if flatMin >= 0 {
		t.Errorf("degenerate min = %v, must be below 0", flatMin)
	}

	if _, emptyMin := spectrum.NormalizeToPeak(nil); emptyMin >= 0 {
		t.Errorf("empty min = %v, must be below 0", emptyMin)
	}
}
