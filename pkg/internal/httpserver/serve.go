package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// Handler returns the full route table. Exposed so tests and embedders can
// mount the control surface without binding a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/config", s.handleConfig)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/signals", s.handleListSignals)
	mux.HandleFunc("POST /api/signals", s.handleAddSignal)
	mux.HandleFunc("PUT /api/signals/{id}", s.handleUpdateSignal)
	mux.HandleFunc("DELETE /api/signals/{id}", s.handleRemoveSignal)
	mux.HandleFunc("GET /charts/{name}", s.handleChart)
	mux.HandleFunc("GET /ws", s.handleSocket)
	mux.HandleFunc("POST /waveform/sample", s.handleWaveformSample)

	return mux
}

// Serve starts the HTTP server and blocks until ctx is canceled or the
// listener fails. The resource monitor runs for the lifetime of the call.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.Handler(),
		ReadTimeout:  s.timeout,
		WriteTimeout: s.timeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go s.meter.Monitor(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.NotifyLoggers(
			types.InfoLevel,
			"Serve: starting HTTP server",
			"component", s.componentMetadata,
			"event", "ServeStart",
			"address", s.address,
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.NotifyLoggers(
			types.WarnLevel,
			"Serve: context canceled, shutting down",
			"component", s.componentMetadata,
			"event", "ServeStop",
			"result", "CANCELLED",
		)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			s.NotifyLoggers(
				types.ErrorLevel,
				"Serve: server error",
				"component", s.componentMetadata,
				"event", "ServeError",
				"error", err,
			)
			return err
		}
		return nil
	}
}
