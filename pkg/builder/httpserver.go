package builder

import (
	"time"

	"github.com/joeydtaylor/spectra/pkg/internal/httpserver"
	"github.com/joeydtaylor/spectra/pkg/internal/mixer"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// Server is the HTTP control surface over a mixer.
type Server = httpserver.Server

// Chart names the server exposes under /charts/.
const (
	ChartWaveform  = httpserver.ChartWaveform
	ChartSpectrum  = httpserver.ChartSpectrum
	ChartFrequency = httpserver.ChartFrequency
)

// NewHTTPServer builds the control surface and wires the broadcast chain.
func NewHTTPServer(m *mixer.Mixer, options ...types.Option[*Server]) *Server {
	return httpserver.NewServer(m, options...)
}

// HTTPServerWithAddress sets the listen address.
func HTTPServerWithAddress(address string) types.Option[*Server] {
	return httpserver.WithAddress(address)
}

// HTTPServerWithTimeout sets the read/write timeouts.
func HTTPServerWithTimeout(timeout time.Duration) types.Option[*Server] {
	return httpserver.WithTimeout(timeout)
}

// HTTPServerWithLogger adds loggers to the server and the components it wires.
func HTTPServerWithLogger(logger ...types.Logger) types.Option[*Server] {
	return httpserver.WithLogger(logger...)
}

// HTTPServerWithMeter substitutes a pre-built meter.
func HTTPServerWithMeter(m types.Meter) types.Option[*Server] {
	return httpserver.WithMeter(m)
}

// HTTPServerWithGeometry overrides the chart geometry.
func HTTPServerWithGeometry(g Geometry) types.Option[*Server] {
	return httpserver.WithGeometry(g)
}

// HTTPServerWithDebounceInterval sets the parameter-edit settle time.
func HTTPServerWithDebounceInterval(d time.Duration) types.Option[*Server] {
	return httpserver.WithDebounceInterval(d)
}

// HTTPServerWithComponentMetadata adds component metadata overrides.
func HTTPServerWithComponentMetadata(name string, id string) types.Option[*Server] {
	return httpserver.WithComponentMetadata(name, id)
}
