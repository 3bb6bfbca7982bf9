// Package sensor options configure callbacks and loggers on a Sensor at construction.
package sensor

import "github.com/joeydtaylor/spectra/pkg/internal/types"

// WithLogger creates an option to add loggers to a Sensor.
func WithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectLogger(logger...)
	}
}

// WithOnSignalAddedFunc registers callbacks for the SignalAdded event.
func WithOnSignalAddedFunc(callback ...func(c types.ComponentMetadata, snap types.SignalSnapshot)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnSignalAdded(callback...)
	}
}

// WithOnSignalRemovedFunc registers callbacks for the SignalRemoved event.
func WithOnSignalRemovedFunc(callback ...func(c types.ComponentMetadata, snap types.SignalSnapshot)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnSignalRemoved(callback...)
	}
}

// WithOnSignalUpdatedFunc registers callbacks for the SignalUpdated event.
func WithOnSignalUpdatedFunc(callback ...func(c types.ComponentMetadata, before, after types.SignalSnapshot)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnSignalUpdated(callback...)
	}
}

// WithOnFrameRenderedFunc registers callbacks for the FrameRendered event.
func WithOnFrameRenderedFunc(callback ...func(c types.ComponentMetadata, chart string, bytes int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnFrameRendered(callback...)
	}
}

// WithOnErrorFunc registers callbacks for the Error event.
func WithOnErrorFunc(callback ...func(c types.ComponentMetadata, err error)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnError(callback...)
	}
}

// WithComponentMetadata adds component metadata overrides.
func WithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.SetComponentMetadata(name, id)
	}
}
