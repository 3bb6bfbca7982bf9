package oscillator_test

import (
	"math"
	"testing"

	"github.com/joeydtaylor/spectra/pkg/internal/oscillator"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

func testConfig() types.AudioConfig {
	return types.AudioConfig{BufferSize: 2048, SampleRate: 44100}
}

func TestGenerateSine(t *testing.T) {
	cfg := testConfig()
	o := oscillator.New(types.WaveformSine, 400, 1.0, cfg)
	buf := o.Generate()

	if len(buf) != cfg.BufferSize {
		t.Fatalf("buffer length = %d, want %d", len(buf), cfg.BufferSize)
	}
	if buf[0] != 0 {
		t.Errorf("sine must start at 0, got %v", buf[0])
	}
	for i, v := range buf {
		if math.Abs(v) > 1.0 {
			t.Fatalf("sample %d = %v exceeds amplitude 1.0", i, v)
		}
	}
	// A 400 Hz sine at 44100 Hz should actually move.
	peak := 0.0
	for _, v := range buf {
		if math.Abs(v) > peak {
			peak = math.Abs(v)
		}
	}
	if peak < 0.99 {
		t.Errorf("sine peak = %v, expected near 1.0", peak)
	}
}

func TestGenerateBounds(t *testing.T) {
	cfg := testConfig()
	kinds := []types.Waveform{
		types.WaveformSine,
		types.WaveformTriangle,
		types.WaveformSaw,
		types.WaveformSquare,
		types.WaveformNoise,
	}
	const amp = 2.5
	for _, kind := range kinds {
		buf := oscillator.New(kind, 1000, amp, cfg).Generate()
		for i, v := range buf {
			if math.Abs(v) > amp {
				t.Errorf("%v sample %d = %v exceeds amplitude %v", kind, i, v, amp)
				break
			}
		}
	}
}

func TestGenerateSquareLevels(t *testing.T) {
	buf := oscillator.New(types.WaveformSquare, 100, 1.0, testConfig()).Generate()
	for i, v := range buf {
		if v != 1.0 && v != -1.0 {
			t.Fatalf("square sample %d = %v, want ±1", i, v)
		}
	}
}

func TestGenerateIsDeterministicForPeriodicKinds(t *testing.T) {
	cfg := testConfig()
	a := oscillator.New(types.WaveformSaw, 523.25, 0.8, cfg).Generate()
	b := oscillator.New(types.WaveformSaw, 523.25, 0.8, cfg).Generate()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("saw differs at %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestNoiseStableWithinFrame(t *testing.T) {
	o := oscillator.New(types.WaveformNoise, 0, 1.0, testConfig())
	first := append([]float64(nil), o.Generate()...)
	second := o.Generate()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("noise sample %d changed between generates: %v != %v", i, first[i], second[i])
		}
	}
}

func TestAddSignal(t *testing.T) {
	cfg := testConfig()
	o := oscillator.New(types.WaveformSine, 400, 1.0, cfg)
	base := append([]float64(nil), o.Generate()...)

	other := oscillator.New(types.WaveformSine, 400, 1.0, cfg).Generate()
	if err := o.AddSignal(other); err != nil {
		t.Fatalf("AddSignal error: %v", err)
	}
	sum := o.Signal()
	for i := range sum {
		if want := 2 * base[i]; math.Abs(sum[i]-want) > 1e-12 {
			t.Fatalf("sum[%d] = %v, want %v", i, sum[i], want)
		}
	}

	if err := o.AddSignal(make([]float64, 3)); err == nil {
		t.Fatal("expected error adding mismatched buffer length")
	}
}
