package types

import "fmt"

// Waveform identifies the shape an oscillator produces.
type Waveform int

const (
	WaveformSine Waveform = iota
	WaveformTriangle
	WaveformSaw
	WaveformSquare
	WaveformNoise
)

func (w Waveform) String() string {
	switch w {
	case WaveformSine:
		return "sine"
	case WaveformTriangle:
		return "triangle"
	case WaveformSaw:
		return "saw"
	case WaveformSquare:
		return "square"
	case WaveformNoise:
		return "noise"
	default:
		return fmt.Sprintf("waveform(%d)", int(w))
	}
}

// ParseWaveform converts a textual waveform kind, as submitted by the control surface,
// into a Waveform. Unknown kinds are rejected rather than defaulted.
func ParseWaveform(s string) (Waveform, error) {
	switch s {
	case "sine":
		return WaveformSine, nil
	case "triangle":
		return WaveformTriangle, nil
	case "saw":
		return WaveformSaw, nil
	case "square":
		return WaveformSquare, nil
	case "noise":
		return WaveformNoise, nil
	default:
		return 0, fmt.Errorf("unknown waveform kind: %q", s)
	}
}

// SignalSnapshot is the immutable view of one signal's parameters carried in
// sensor notifications and API responses. Notification payloads are explicit:
// observers receive the state that changed, never a bare "something changed".
type SignalSnapshot struct {
	ID        string   `json:"id"`
	Waveform  Waveform `json:"-"`
	Kind      string   `json:"waveform"`
	Frequency float64  `json:"frequency"`
	Amplitude float64  `json:"amplitude"`
}
