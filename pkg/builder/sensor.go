package builder

import (
	"github.com/joeydtaylor/spectra/pkg/internal/sensor"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// NewSensor creates a new Sensor with specified options.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	return sensor.NewSensor(options...)
}

// SensorWithLogger adds a logger to the Sensor.
func SensorWithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return sensor.WithLogger(logger...)
}

// SensorWithOnSignalAddedFunc registers a callback for the OnSignalAdded event.
func SensorWithOnSignalAddedFunc(callback ...func(c ComponentMetadata, snap SignalSnapshot)) types.Option[types.Sensor] {
	return sensor.WithOnSignalAddedFunc(callback...)
}

// SensorWithOnSignalRemovedFunc registers a callback for the OnSignalRemoved event.
func SensorWithOnSignalRemovedFunc(callback ...func(c ComponentMetadata, snap SignalSnapshot)) types.Option[types.Sensor] {
	return sensor.WithOnSignalRemovedFunc(callback...)
}

// SensorWithOnSignalUpdatedFunc registers a callback for the OnSignalUpdated event.
func SensorWithOnSignalUpdatedFunc(callback ...func(c ComponentMetadata, before, after SignalSnapshot)) types.Option[types.Sensor] {
	return sensor.WithOnSignalUpdatedFunc(callback...)
}

// SensorWithOnFrameRenderedFunc registers a callback for the OnFrameRendered event.
func SensorWithOnFrameRenderedFunc(callback ...func(c ComponentMetadata, chart string, bytes int)) types.Option[types.Sensor] {
	return sensor.WithOnFrameRenderedFunc(callback...)
}

// SensorWithOnErrorFunc registers a callback for the OnError event.
func SensorWithOnErrorFunc(callback ...func(c ComponentMetadata, err error)) types.Option[types.Sensor] {
	return sensor.WithOnErrorFunc(callback...)
}

// SensorWithComponentMetadata adds component metadata overrides.
func SensorWithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return sensor.WithComponentMetadata(name, id)
}
