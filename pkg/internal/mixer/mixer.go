// Package mixer owns the ordered set of signals and derives the aggregate
// time-domain buffer and its frequency-domain transform from them.
//
// The Mixer is the single broadcast point of the system: every externally visible
// mutation (adding, removing or updating a signal) flows through it and fans out
// to attached sensors with an explicit payload describing what changed. Chart
// renderers subscribe through those sensors and re-derive their frames.
package mixer

import (
	"sync"

	"github.com/joeydtaylor/spectra/pkg/internal/signal"
	"github.com/joeydtaylor/spectra/pkg/internal/spectrum"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
	"github.com/joeydtaylor/spectra/pkg/internal/utils"
)

// Mixer aggregates signals in insertion order. All collection access is
// mutex-guarded; notification fan-out happens outside the collection lock.
type Mixer struct {
	componentMetadata types.ComponentMetadata
	cfg               types.AudioConfig
	window            spectrum.WindowFunc

	mu      sync.Mutex
	signals []*signal.Signal

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewMixer creates a mixer for the given audio configuration and applies options.
func NewMixer(cfg types.AudioConfig, options ...types.Option[*Mixer]) *Mixer {
	m := &Mixer{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "MIXER",
		},
		cfg:     cfg,
		signals: []*signal.Signal{},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Config returns the mixer's audio configuration.
func (m *Mixer) Config() types.AudioConfig {
	return m.cfg
}

// GetComponentMetadata returns the mixer metadata.
func (m *Mixer) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

// SetComponentMetadata overrides the mixer's name and id.
func (m *Mixer) SetComponentMetadata(name string, id string) {
	m.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: m.componentMetadata.Type}
}

// ConnectLogger attaches logger(s).
func (m *Mixer) ConnectLogger(loggers ...types.Logger) {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	m.loggers = append(m.loggers, loggers...)
}

// ConnectSensor attaches sensor(s) that receive the mixer's change broadcasts.
func (m *Mixer) ConnectSensor(sensors ...types.Sensor) {
	m.sensorLock.Lock()
	defer m.sensorLock.Unlock()
	m.sensors = append(m.sensors, sensors...)
}

// snapshotLoggers returns a stable snapshot of the logger slice.
// Never hold loggersLock while invoking logger methods.
func (m *Mixer) snapshotLoggers() []types.Logger {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	if len(m.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(m.loggers))
	copy(out, m.loggers)
	return out
}

// snapshotSensors returns a stable snapshot of the sensor slice.
// Never hold sensorLock while invoking sensor callbacks.
func (m *Mixer) snapshotSensors() []types.Sensor {
	m.sensorLock.Lock()
	defer m.sensorLock.Unlock()
	if len(m.sensors) == 0 {
		return nil
	}
	out := make([]types.Sensor, len(m.sensors))
	copy(out, m.sensors)
	return out
}

// NotifyLoggers sends a log message with the specified level, message, and key/value pairs
// to all registered loggers, honoring each logger's level gate.
func (m *Mixer) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := m.snapshotLoggers()
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
