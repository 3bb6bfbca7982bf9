package dspmath

import "math/rand"

// NoiseSource produces amplitude-scaled random samples memoized by input value.
// The first request for a given x draws amplitude * random * ±1 and caches it;
// every later request for the same x returns the cached sample, so a source
// behaves like a fixed (if jagged) function once observed.
//
// Each source owns its cache and its random stream: two sources built with the
// same amplitude still disagree at any given x. A source is not safe for
// concurrent use.
type NoiseSource struct {
	amplitude float64
	cache     map[float64]float64
	rng       *rand.Rand
}

// NewNoiseSource constructs a source with its own cache and a seeded random stream.
func NewNoiseSource(amplitude float64, seed int64) *NoiseSource {
	return &NoiseSource{
		amplitude: amplitude,
		cache:     make(map[float64]float64),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Sample returns the memoized noise value for x, computing and caching it on first use.
func (n *NoiseSource) Sample(x float64) float64 {
	if v, ok := n.cache[x]; ok {
		return v
	}
	v := n.amplitude * n.rng.Float64()
	if n.rng.Float64() < 0.5 {
		v = -v
	}
	n.cache[x] = v
	return v
}

// Amplitude returns the amplitude the source was built with.
func (n *NoiseSource) Amplitude() float64 {
	return n.amplitude
}

// Len returns the number of memoized samples.
func (n *NoiseSource) Len() int {
	return len(n.cache)
}
