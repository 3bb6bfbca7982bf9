package render

import "math"

// LinearScale maps a value from a domain interval onto a range interval, the
// same surface a browser charting library's linear scale provides: value
// mapping plus round tick generation for axis labels.
type LinearScale struct {
	DomainMin, DomainMax float64
	RangeMin, RangeMax   float64
}

// NewLinearScale builds a scale from domain [d0,d1] to range [r0,r1].
func NewLinearScale(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{DomainMin: d0, DomainMax: d1, RangeMin: r0, RangeMax: r1}
}

// Map projects v from the domain onto the range. A degenerate domain (zero
// width) maps everything onto the range start instead of dividing by zero.
func (s LinearScale) Map(v float64) float64 {
	span := s.DomainMax - s.DomainMin
	if span == 0 {
		return s.RangeMin
	}
	t := (v - s.DomainMin) / span
	return s.RangeMin + t*(s.RangeMax-s.RangeMin)
}

// Ticks returns up to n round values covering the domain. The step is chosen
// from the 1/2/5 ladder so labels stay readable at any span.
func (s LinearScale) Ticks(n int) []float64 {
	if n < 2 {
		n = 2
	}
	span := s.DomainMax - s.DomainMin
	if span == 0 {
		return []float64{s.DomainMin}
	}

	rawStep := span / float64(n-1)
	mag := math.Pow(10, math.Floor(math.Log10(math.Abs(rawStep))))
	var step float64
	switch norm := math.Abs(rawStep) / mag; {
	case norm < 1.5:
		step = mag
	case norm < 3.5:
		step = 2 * mag
	case norm < 7.5:
		step = 5 * mag
	default:
		step = 10 * mag
	}
	if span < 0 {
		step = -step
	}

	start := math.Ceil(s.DomainMin/step) * step
	if span < 0 {
		start = math.Floor(s.DomainMin/step) * step
	}

	var ticks []float64
	for v := start; (span > 0 && v <= s.DomainMax+step/1e6) || (span < 0 && v >= s.DomainMax-step/1e6); v += step {
		// Snap near-zero floating artifacts so labels render as "0".
		if math.Abs(v) < math.Abs(step)/1e6 {
			v = 0
		}
		ticks = append(ticks, v)
	}
	return ticks
}
