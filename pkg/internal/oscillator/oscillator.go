// Package oscillator generates one analysis frame of a periodic or noise waveform.
// An oscillator is ephemeral: the aggregation layer constructs a fresh one from each
// signal's parameters on every render and discards it afterwards, so no phase or
// noise state survives between frames.
package oscillator

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/joeydtaylor/spectra/pkg/internal/dspmath"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// Oscillator produces a sample buffer for one waveform kind at a fixed
// frequency and amplitude, sized by the audio configuration.
type Oscillator struct {
	kind      types.Waveform
	frequency float64
	amplitude float64
	cfg       types.AudioConfig
	signal    []float64
	noise     *dspmath.NoiseSource
}

// New constructs an oscillator for the given waveform, frequency (Hz) and amplitude.
func New(kind types.Waveform, frequency, amplitude float64, cfg types.AudioConfig) *Oscillator {
	o := &Oscillator{
		kind:      kind,
		frequency: frequency,
		amplitude: amplitude,
		cfg:       cfg,
		signal:    make([]float64, cfg.BufferSize),
	}
	if kind == types.WaveformNoise {
		o.noise = dspmath.NewNoiseSource(amplitude, time.Now().UnixNano())
	}
	return o
}

// Generate computes the oscillator's sample buffer and returns it. The buffer is
// owned by the oscillator; callers that need to keep it across renders must copy it.
func (o *Oscillator) Generate() []float64 {
	step := o.frequency / o.cfg.SampleRate
	for i := range o.signal {
		o.signal[i] = o.sample(float64(i), step)
	}
	return o.signal
}

func (o *Oscillator) sample(i, step float64) float64 {
	phase := math.Mod(i*step, 1)
	switch o.kind {
	case types.WaveformSine:
		return o.amplitude * math.Sin(2*math.Pi*phase)
	case types.WaveformTriangle:
		return o.amplitude * (1 - 4*math.Abs(math.Round(phase)-phase))
	case types.WaveformSaw:
		return o.amplitude * 2 * (phase - math.Round(phase))
	case types.WaveformSquare:
		if phase < 0.5 {
			return o.amplitude
		}
		return -o.amplitude
	case types.WaveformNoise:
		// Memoized per sample index, so repeated reads of one frame are stable.
		return o.noise.Sample(i)
	default:
		return 0
	}
}

// AddSignal accumulates another buffer sample-wise into this oscillator's signal.
func (o *Oscillator) AddSignal(buf []float64) error {
	if len(buf) != len(o.signal) {
		return fmt.Errorf("oscillator: cannot add signal of length %d to buffer of length %d", len(buf), len(o.signal))
	}
	floats.Add(o.signal, buf)
	return nil
}

// Signal returns the current sample buffer without regenerating it.
func (o *Oscillator) Signal() []float64 {
	return o.signal
}

// Kind returns the waveform kind the oscillator was built with.
func (o *Oscillator) Kind() types.Waveform {
	return o.kind
}
