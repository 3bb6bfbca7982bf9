package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/joeydtaylor/spectra/pkg/internal/types"
	"github.com/joeydtaylor/spectra/pkg/internal/utils"
)

// Every JSON response is wrapped in a data or error envelope so clients can
// switch on the top-level key.
type dataEnvelope struct {
	Data interface{} `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dataEnvelope{Data: payload}); err != nil {
		s.NotifyLoggers(
			types.ErrorLevel,
			"Response encode failed",
			"component", s.componentMetadata,
			"event", "RespondJSON",
			"error", err,
		)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: msg})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	cfg := s.mixer.Config()
	state := struct {
		Signals    []types.SignalSnapshot
		BufferSize int
		SampleRate float64
		Nyquist    float64
	}{
		Signals:    s.mixer.Snapshots(),
		BufferSize: cfg.BufferSize,
		SampleRate: cfg.SampleRate,
		Nyquist:    cfg.Nyquist(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.index.Execute(w, state); err != nil {
		s.NotifyLoggers(
			types.ErrorLevel,
			"Index render failed",
			"component", s.componentMetadata,
			"event", "HandleIndex",
			"error", err,
		)
	}
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	cfg := s.mixer.Config()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"bufferSize": cfg.BufferSize,
		"sampleRate": cfg.SampleRate,
		"nyquist":    cfg.Nyquist(),
		"bandwidth":  cfg.Bandwidth(),
		"bands":      cfg.Bands(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.meter.Snapshot())
}

func (s *Server) handleListSignals(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.mixer.Snapshots())
}

func (s *Server) handleAddSignal(w http.ResponseWriter, r *http.Request) {
	sig := s.mixer.AddDefault()
	s.NotifyLoggers(
		types.InfoLevel,
		"Signal added",
		"component", s.componentMetadata,
		"event", "HandleAddSignal",
		"signal_id", sig.ID(),
	)
	s.respondJSON(w, http.StatusCreated, sig.Snapshot())
}

// signalUpdateRequest carries the full parameter set of one signal. All three
// fields commit together.
type signalUpdateRequest struct {
	Waveform  string  `json:"waveform"`
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
}

func (s *Server) handleUpdateSignal(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req signalUpdateRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "malformed request body: "+err.Error())
		return
	}
	kind, err := types.ParseWaveform(req.Waveform)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, ok := s.mixer.Get(id); !ok {
		s.respondError(w, http.StatusNotFound, "no signal with id "+id)
		return
	}

	// The commit is deferred so a slider drag collapses to a single update.
	// A later PUT for the same signal supersedes this one.
	s.debouncerFor(id).Do(func() {
		if err := s.mixer.Update(id, kind, req.Frequency, req.Amplitude); err != nil {
			s.NotifyLoggers(
				types.WarnLevel,
				"Deferred signal update failed",
				"component", s.componentMetadata,
				"event", "HandleUpdateSignal",
				"signal_id", id,
				"error", err,
			)
		}
	})

	s.respondJSON(w, http.StatusAccepted, types.SignalSnapshot{
		ID:        id,
		Waveform:  kind,
		Kind:      kind.String(),
		Frequency: req.Frequency,
		Amplitude: req.Amplitude,
	})
}

func (s *Server) handleRemoveSignal(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.mixer.Remove(id); err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.dropDebouncer(id)
	w.WriteHeader(http.StatusNoContent)
}

// handleChart serves the named chart's current frame as an SVG document,
// gzip-compressed when the client accepts it. The frame is re-rendered on
// demand and the render time feeds the meter.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(r.PathValue("name"), ".svg")
	chart, ok := s.charts[name]
	if !ok {
		s.respondError(w, http.StatusNotFound, "no chart named "+name)
		return
	}

	start := time.Now()
	frame, err := chart.Render()
	if err != nil {
		// Stale frames beat blank charts; serve the previous one if any.
		s.meter.RecordRenderError()
		frame = chart.SVG()
		if len(frame) == 0 {
			s.respondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
	} else {
		s.meter.RecordRender(time.Since(start))
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")

	if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		defer gz.Close()
		if _, err := gz.Write(frame); err != nil {
			s.NotifyLoggers(
				types.ErrorLevel,
				"Compressed chart write failed",
				"component", s.componentMetadata,
				"event", "HandleChart",
				"chart", name,
				"error", err,
			)
		}
		return
	}

	if _, err := w.Write(frame); err != nil {
		s.NotifyLoggers(
			types.ErrorLevel,
			"Chart write failed",
			"component", s.componentMetadata,
			"event", "HandleChart",
			"chart", name,
			"error", err,
		)
	}
}
