// Package render implements the server-side chart views: a time-domain waveform
// line, a band-indexed spectrum bar chart, and a frequency-mapped spectrum bar
// chart. Each chart derives its data from the mixer on every broadcast and
// produces a complete SVG document; per-bar SMIL animations tween geometry from
// the previous frame so live updates read as transitions, matching the behavior
// of the browser charting layer this replaces.
package render

import (
	"sync"

	"github.com/joeydtaylor/spectra/pkg/internal/spectrum"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
	"github.com/joeydtaylor/spectra/pkg/internal/utils"
)

// Source is the aggregate the charts draw from. *mixer.Mixer satisfies it.
type Source interface {
	Config() types.AudioConfig
	TotalSignal() ([]float64, error)
	Transform() (*spectrum.Transform, error)
}

// Geometry fixes the pixel dimensions shared by all three charts.
type Geometry struct {
	Width, Height int
	Pad           int
}

// DefaultGeometry is a 900x300 frame with a 40px gutter for axes.
func DefaultGeometry() Geometry {
	return Geometry{Width: 900, Height: 300, Pad: 40}
}

type baseChart struct {
	componentMetadata types.ComponentMetadata
	source            Source
	geom              Geometry

	// renderMu serializes Render calls: drawing mutates the previous-frame
	// geometry the animations tween from, and renders are triggered both by
	// HTTP requests and by broadcast subscriptions.
	renderMu sync.Mutex

	mu    sync.Mutex
	frame []byte

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

func newBaseChart(chartType string, source Source, geom Geometry) baseChart {
	return baseChart{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: chartType,
		},
		source: source,
		geom:   geom,
	}
}

// GetComponentMetadata returns the chart metadata.
func (b *baseChart) GetComponentMetadata() types.ComponentMetadata {
	return b.componentMetadata
}

// SetComponentMetadata overrides the chart's name and id.
func (b *baseChart) SetComponentMetadata(name string, id string) {
	b.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: b.componentMetadata.Type}
}

// ConnectLogger attaches logger(s).
func (b *baseChart) ConnectLogger(loggers ...types.Logger) {
	b.loggersLock.Lock()
	defer b.loggersLock.Unlock()
	b.loggers = append(b.loggers, loggers...)
}

// ConnectSensor attaches sensor(s) notified after every rendered frame.
func (b *baseChart) ConnectSensor(sensors ...types.Sensor) {
	b.sensorLock.Lock()
	defer b.sensorLock.Unlock()
	b.sensors = append(b.sensors, sensors...)
}

func (b *baseChart) snapshotSensors() []types.Sensor {
	b.sensorLock.Lock()
	defer b.sensorLock.Unlock()
	if len(b.sensors) == 0 {
		return nil
	}
	out := make([]types.Sensor, len(b.sensors))
	copy(out, b.sensors)
	return out
}

// NotifyLoggers sends a log message with the specified level, message, and key/value pairs
// to all attached loggers, honoring each logger's level gate.
func (b *baseChart) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	b.loggersLock.Lock()
	loggers := append([]types.Logger(nil), b.loggers...)
	b.loggersLock.Unlock()

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

// SVG returns the most recently rendered frame without recomputing it.
func (b *baseChart) SVG() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame
}

func (b *baseChart) storeFrame(frame []byte) {
	b.mu.Lock()
	b.frame = frame
	b.mu.Unlock()
}

// notifyFrameRendered logs and fans out one completed frame.
func (b *baseChart) notifyFrameRendered(name string, size int) {
	b.NotifyLoggers(
		types.DebugLevel,
		"Chart frame rendered",
		"component", b.componentMetadata,
		"event", "FrameRendered",
		"result", "SUCCESS",
		"chart", name,
		"bytes", size,
	)
	for _, s := range b.snapshotSensors() {
		if s == nil {
			continue
		}
		s.InvokeOnFrameRendered(b.componentMetadata, name, size)
	}
}

// notifyRenderError logs and fans out a failed render. Render failures stay
// local to the chart; the previous frame keeps being served.
func (b *baseChart) notifyRenderError(err error) {
	b.NotifyLoggers(
		types.ErrorLevel,
		"Chart render failed",
		"component", b.componentMetadata,
		"event", "Render",
		"result", "FAILURE",
		"error", err,
	)
	for _, s := range b.snapshotSensors() {
		if s == nil {
			continue
		}
		s.InvokeOnError(b.componentMetadata, err)
	}
}

// Subscribe registers re-render callbacks on the given sensor so the chart
// redraws on every mixer broadcast: member changes and attribute edits alike.
func Subscribe(chart types.Chart, s types.Sensor) {
	rerender := func() {
		if _, err := chart.Render(); err != nil {
			chart.NotifyLoggers(
				types.ErrorLevel,
				"Re-render after broadcast failed",
				"component", chart.GetComponentMetadata(),
				"event", "Subscribe",
				"result", "FAILURE",
				"error", err,
			)
		}
	}
	s.RegisterOnSignalAdded(func(types.ComponentMetadata, types.SignalSnapshot) { rerender() })
	s.RegisterOnSignalRemoved(func(types.ComponentMetadata, types.SignalSnapshot) { rerender() })
	s.RegisterOnSignalUpdated(func(types.ComponentMetadata, types.SignalSnapshot, types.SignalSnapshot) { rerender() })
}
