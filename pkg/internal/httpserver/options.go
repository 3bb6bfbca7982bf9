package httpserver

import (
	"time"

	"github.com/joeydtaylor/spectra/pkg/internal/render"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// WithAddress sets the listen address, e.g. ":8080".
func WithAddress(address string) types.Option[*Server] {
	return func(s *Server) {
		s.address = address
	}
}

// WithTimeout sets the server read/write timeouts.
func WithTimeout(timeout time.Duration) types.Option[*Server] {
	return func(s *Server) {
		s.timeout = timeout
	}
}

// WithLogger attaches loggers to the server and to every component it wires.
func WithLogger(loggers ...types.Logger) types.Option[*Server] {
	return func(s *Server) {
		s.ConnectLogger(loggers...)
	}
}

// WithMeter substitutes a pre-built meter for the server's default one.
func WithMeter(m types.Meter) types.Option[*Server] {
	return func(s *Server) {
		s.meter = m
	}
}

// WithGeometry overrides the pixel geometry shared by the three charts.
func WithGeometry(g render.Geometry) types.Option[*Server] {
	return func(s *Server) {
		s.geom = g
	}
}

// WithDebounceInterval sets how long an edited signal's parameters may keep
// changing before the pending update commits.
func WithDebounceInterval(d time.Duration) types.Option[*Server] {
	return func(s *Server) {
		s.debounceInterval = d
	}
}

// WithComponentMetadata overrides the server's name and id.
func WithComponentMetadata(name string, id string) types.Option[*Server] {
	return func(s *Server) {
		s.SetComponentMetadata(name, id)
	}
}
