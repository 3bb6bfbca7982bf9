package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/joeydtaylor/spectra/pkg/internal/dspmath"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// NoiseFloorDB is the floor applied to non-finite decibel values. Silence converts
// to -Inf dB; charts need a finite bottom edge for their vertical scales.
const NoiseFloorDB = -120.0

// Transform is the ephemeral result of one forward FFT: a magnitude per band.
// It is recomputed on every render and never persisted.
type Transform struct {
	Spectrum []float64
	cfg      types.AudioConfig
}

// Bandwidth returns the Hz spanned by each band.
func (t *Transform) Bandwidth() float64 {
	return t.cfg.Bandwidth()
}

// BandFrequency maps a band index to the center frequency of that band.
func (t *Transform) BandFrequency(band int) float64 {
	return t.cfg.BandFrequency(band)
}

// Decibels converts the magnitude spectrum to decibels, flooring silence
// (zero magnitude, which would convert to -Inf) at NoiseFloorDB.
func (t *Transform) Decibels() []float64 {
	out := make([]float64, len(t.Spectrum))
	for i, m := range t.Spectrum {
		db := dspmath.ToDecibels(m)
		if math.IsInf(db, -1) || math.IsNaN(db) || db < NoiseFloorDB {
			db = NoiseFloorDB
		}
		out[i] = db
	}
	return out
}

// NormalizeToPeak shifts a decibel sequence so its maximum is exactly 0 dB and
// returns the shifted sequence with its new minimum. An empty or all-equal
// sequence degenerates to a flat zero line with the minimum pinned one floor
// below, so chart scales never collapse to a single point.
func NormalizeToPeak(db []float64) (normalized []float64, min float64) {
	if len(db) == 0 {
		return nil, NoiseFloorDB
	}
	max := floats.Max(db)
	normalized = make([]float64, len(db))
	for i, v := range db {
		normalized[i] = v - max
	}
	min = floats.Min(normalized)
	if min == 0 {
		min = NoiseFloorDB
	}
	return normalized, min
}
