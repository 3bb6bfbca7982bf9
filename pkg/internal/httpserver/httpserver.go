// Package httpserver is the control surface of the composer. It serves the
// interactive page, a JSON API for signal CRUD and stats, the three live chart
// documents, a WebSocket feed that pushes freshly rendered frames on every
// mixer broadcast, and a WAV upload endpoint that extracts a preview buffer.
//
// The server owns the wiring between the mixer, the charts and the meter: it
// creates one sensor, subscribes the charts to it first and its own frame
// broadcaster second, so by the time a frame is pushed every chart has already
// re-rendered.
package httpserver

import (
	"html/template"
	"sync"
	"time"

	"github.com/joeydtaylor/spectra/pkg/internal/debounce"
	"github.com/joeydtaylor/spectra/pkg/internal/meter"
	"github.com/joeydtaylor/spectra/pkg/internal/mixer"
	"github.com/joeydtaylor/spectra/pkg/internal/render"
	"github.com/joeydtaylor/spectra/pkg/internal/sensor"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
	"github.com/joeydtaylor/spectra/pkg/internal/utils"
)

// Chart names used in routes and in pushed frame payloads.
const (
	ChartWaveform  = "waveform"
	ChartSpectrum  = "spectrum"
	ChartFrequency = "frequency"
)

// Server hosts the HTTP control surface over a mixer.
type Server struct {
	componentMetadata types.ComponentMetadata

	address string
	timeout time.Duration

	mixer *mixer.Mixer
	meter types.Meter
	geom  render.Geometry

	charts map[string]types.Chart

	debounceInterval time.Duration
	debouncersMu     sync.Mutex
	debouncers       map[string]*debounce.Debouncer

	subsMu sync.Mutex
	subs   map[chan []byte]struct{}

	index *template.Template

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewServer builds a server around the given mixer and wires the full
// broadcast chain: sensor, chart re-renders, meter bookkeeping and WebSocket
// frame pushes.
func NewServer(m *mixer.Mixer, options ...types.Option[*Server]) *Server {
	s := &Server{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "HTTP_SERVER",
		},
		address:          ":8080",
		timeout:          30 * time.Second,
		mixer:            m,
		geom:             render.DefaultGeometry(),
		debounceInterval: debounce.DefaultInterval,
		debouncers:       make(map[string]*debounce.Debouncer),
		subs:             make(map[chan []byte]struct{}),
		index:            template.Must(template.New("index").Parse(indexHTML)),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.meter == nil {
		s.meter = meter.NewMeter(meter.WithLogger(s.snapshotLoggers()...))
	}
	s.wire()
	return s
}

// wire builds the charts and the sensor chain. Chart subscriptions are
// registered before the server's own callbacks; sensors invoke callbacks in
// registration order, so pushed frames always carry post-change SVG.
func (s *Server) wire() {
	loggers := s.snapshotLoggers()

	s.charts = map[string]types.Chart{
		ChartWaveform: render.NewWaveformChart(s.mixer,
			render.WaveformChartWithLogger(loggers...),
			render.WaveformChartWithGeometry(s.geom),
		),
		ChartSpectrum: render.NewSpectrumChart(s.mixer,
			render.SpectrumChartWithLogger(loggers...),
			render.SpectrumChartWithGeometry(s.geom),
		),
		ChartFrequency: render.NewFrequencyChart(s.mixer,
			render.FrequencyChartWithLogger(loggers...),
			render.FrequencyChartWithGeometry(s.geom),
		),
	}

	sn := sensor.NewSensor(sensor.WithLogger(loggers...))
	render.Subscribe(s.charts[ChartWaveform], sn)
	render.Subscribe(s.charts[ChartSpectrum], sn)
	render.Subscribe(s.charts[ChartFrequency], sn)
	sn.RegisterOnSignalAdded(func(types.ComponentMetadata, types.SignalSnapshot) {
		s.meter.SetSignalCount(s.mixer.Len())
		s.broadcastFrame()
	})
	sn.RegisterOnSignalRemoved(func(types.ComponentMetadata, types.SignalSnapshot) {
		s.meter.SetSignalCount(s.mixer.Len())
		s.broadcastFrame()
	})
	sn.RegisterOnSignalUpdated(func(types.ComponentMetadata, types.SignalSnapshot, types.SignalSnapshot) {
		s.broadcastFrame()
	})
	sn.RegisterOnError(func(types.ComponentMetadata, error) {
		s.meter.RecordRenderError()
	})
	s.mixer.ConnectSensor(sn)
}

// Mixer returns the mixer the server controls.
func (s *Server) Mixer() *mixer.Mixer {
	return s.mixer
}

// Meter returns the server's meter.
func (s *Server) Meter() types.Meter {
	return s.meter
}

// Chart returns the chart registered under the given name.
func (s *Server) Chart(name string) (types.Chart, bool) {
	c, ok := s.charts[name]
	return c, ok
}

// GetComponentMetadata returns the server metadata.
func (s *Server) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

// SetComponentMetadata overrides the server's name and id.
func (s *Server) SetComponentMetadata(name string, id string) {
	s.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: s.componentMetadata.Type}
}

// ConnectLogger attaches logger(s).
func (s *Server) ConnectLogger(loggers ...types.Logger) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	s.loggers = append(s.loggers, loggers...)
}

func (s *Server) snapshotLoggers() []types.Logger {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	if len(s.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(s.loggers))
	copy(out, s.loggers)
	return out
}

// NotifyLoggers sends a log message with the specified level, message, and key/value pairs
// to all attached loggers, honoring each logger's level gate.
func (s *Server) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := s.snapshotLoggers()
	if len(loggers) == 0 {
		return
	}

	type levelChecker interface {
		IsLevelEnabled(types.LogLevel) bool
	}

	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		if lc, ok := logger.(levelChecker); ok && !lc.IsLevelEnabled(level) {
			continue
		}

		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

// debouncerFor returns the per-signal debouncer, creating it on first use.
// Slider drags arrive as a burst of PUTs; only the final state is committed.
func (s *Server) debouncerFor(id string) *debounce.Debouncer {
	s.debouncersMu.Lock()
	defer s.debouncersMu.Unlock()
	d, ok := s.debouncers[id]
	if !ok {
		d = debounce.NewDebouncer(s.debounceInterval)
		s.debouncers[id] = d
	}
	return d
}

// dropDebouncer cancels and forgets the debouncer for a removed signal.
func (s *Server) dropDebouncer(id string) {
	s.debouncersMu.Lock()
	defer s.debouncersMu.Unlock()
	if d, ok := s.debouncers[id]; ok {
		d.Stop()
		delete(s.debouncers, id)
	}
}
