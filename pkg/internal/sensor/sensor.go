// Package sensor implements the observer hub of the system. A Sensor holds
// registered callbacks for the explicit event kinds the mixer and the chart
// renderers broadcast, and invokes them synchronously when a producing
// component triggers the corresponding Invoke method.
package sensor

import (
	"sync"

	"github.com/joeydtaylor/spectra/pkg/internal/types"
	"github.com/joeydtaylor/spectra/pkg/internal/utils"
)

// Sensor fans explicit change notifications out to registered callbacks.
type Sensor struct {
	componentMetadata types.ComponentMetadata

	callbackLock    sync.Mutex
	onSignalAdded   []func(c types.ComponentMetadata, s types.SignalSnapshot)
	onSignalRemoved []func(c types.ComponentMetadata, s types.SignalSnapshot)
	onSignalUpdated []func(c types.ComponentMetadata, before, after types.SignalSnapshot)
	onFrameRendered []func(c types.ComponentMetadata, chart string, bytes int)
	onError         []func(c types.ComponentMetadata, err error)

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewSensor creates a sensor and applies options.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// GetComponentMetadata returns the sensor metadata.
func (s *Sensor) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

// SetComponentMetadata overrides the sensor's name and id.
func (s *Sensor) SetComponentMetadata(name string, id string) {
	s.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: s.componentMetadata.Type}
}

// ConnectLogger attaches logger(s).
func (s *Sensor) ConnectLogger(loggers ...types.Logger) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	s.loggers = append(s.loggers, loggers...)
}

// RegisterOnSignalAdded registers callbacks for the SignalAdded event.
func (s *Sensor) RegisterOnSignalAdded(callback ...func(c types.ComponentMetadata, snap types.SignalSnapshot)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onSignalAdded = append(s.onSignalAdded, callback...)
}

// RegisterOnSignalRemoved registers callbacks for the SignalRemoved event.
func (s *Sensor) RegisterOnSignalRemoved(callback ...func(c types.ComponentMetadata, snap types.SignalSnapshot)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onSignalRemoved = append(s.onSignalRemoved, callback...)
}

// RegisterOnSignalUpdated registers callbacks for the SignalUpdated event.
func (s *Sensor) RegisterOnSignalUpdated(callback ...func(c types.ComponentMetadata, before, after types.SignalSnapshot)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onSignalUpdated = append(s.onSignalUpdated, callback...)
}

// RegisterOnFrameRendered registers callbacks for the FrameRendered event.
func (s *Sensor) RegisterOnFrameRendered(callback ...func(c types.ComponentMetadata, chart string, bytes int)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onFrameRendered = append(s.onFrameRendered, callback...)
}

// RegisterOnError registers callbacks for the Error event.
func (s *Sensor) RegisterOnError(callback ...func(c types.ComponentMetadata, err error)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onError = append(s.onError, callback...)
}

// InvokeOnSignalAdded triggers the SignalAdded callbacks.
func (s *Sensor) InvokeOnSignalAdded(c types.ComponentMetadata, snap types.SignalSnapshot) {
	for _, cb := range s.snapshotSignalAdded() {
		cb(c, snap)
	}
}

// InvokeOnSignalRemoved triggers the SignalRemoved callbacks.
func (s *Sensor) InvokeOnSignalRemoved(c types.ComponentMetadata, snap types.SignalSnapshot) {
	for _, cb := range s.snapshotSignalRemoved() {
		cb(c, snap)
	}
}

// InvokeOnSignalUpdated triggers the SignalUpdated callbacks.
func (s *Sensor) InvokeOnSignalUpdated(c types.ComponentMetadata, before, after types.SignalSnapshot) {
	for _, cb := range s.snapshotSignalUpdated() {
		cb(c, before, after)
	}
}

// InvokeOnFrameRendered triggers the FrameRendered callbacks.
func (s *Sensor) InvokeOnFrameRendered(c types.ComponentMetadata, chart string, bytes int) {
	for _, cb := range s.snapshotFrameRendered() {
		cb(c, chart, bytes)
	}
}

// InvokeOnError triggers the Error callbacks.
func (s *Sensor) InvokeOnError(c types.ComponentMetadata, err error) {
	s.NotifyLoggers(
		types.ErrorLevel,
		"Component reported an error",
		"component", c,
		"event", "OnError",
		"result", "FAILURE",
		"error", err,
	)
	for _, cb := range s.snapshotError() {
		cb(c, err)
	}
}

// The snapshot helpers copy the callback slices under lock so Invoke* methods
// never hold callbackLock while running callbacks.
func (s *Sensor) snapshotSignalAdded() []func(types.ComponentMetadata, types.SignalSnapshot) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	out := make([]func(types.ComponentMetadata, types.SignalSnapshot), len(s.onSignalAdded))
	copy(out, s.onSignalAdded)
	return out
}

func (s *Sensor) snapshotSignalRemoved() []func(types.ComponentMetadata, types.SignalSnapshot) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	out := make([]func(types.ComponentMetadata, types.SignalSnapshot), len(s.onSignalRemoved))
	copy(out, s.onSignalRemoved)
	return out
}

func (s *Sensor) snapshotSignalUpdated() []func(types.ComponentMetadata, types.SignalSnapshot, types.SignalSnapshot) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	out := make([]func(types.ComponentMetadata, types.SignalSnapshot, types.SignalSnapshot), len(s.onSignalUpdated))
	copy(out, s.onSignalUpdated)
	return out
}

func (s *Sensor) snapshotFrameRendered() []func(types.ComponentMetadata, string, int) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	out := make([]func(types.ComponentMetadata, string, int), len(s.onFrameRendered))
	copy(out, s.onFrameRendered)
	return out
}

func (s *Sensor) snapshotError() []func(types.ComponentMetadata, error) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	out := make([]func(types.ComponentMetadata, error), len(s.onError))
	copy(out, s.onError)
	return out
}
