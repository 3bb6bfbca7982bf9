package mixer

import "github.com/joeydtaylor/spectra/pkg/internal/types"

// notifySignalAdded logs the addition and fans it out to sensors.
func (m *Mixer) notifySignalAdded(s types.SignalSnapshot) {
	m.NotifyLoggers(
		types.InfoLevel,
		"Signal added",
		"component", m.componentMetadata,
		"event", "SignalAdded",
		"result", "SUCCESS",
		"signal", s,
	)
	for _, sensor := range m.snapshotSensors() {
		if sensor == nil {
			continue
		}
		sensor.InvokeOnSignalAdded(m.componentMetadata, s)
	}
}

// notifySignalRemoved logs the removal and fans it out to sensors.
func (m *Mixer) notifySignalRemoved(s types.SignalSnapshot) {
	m.NotifyLoggers(
		types.InfoLevel,
		"Signal removed",
		"component", m.componentMetadata,
		"event", "SignalRemoved",
		"result", "SUCCESS",
		"signal", s,
	)
	for _, sensor := range m.snapshotSensors() {
		if sensor == nil {
			continue
		}
		sensor.InvokeOnSignalRemoved(m.componentMetadata, s)
	}
}

// notifySignalUpdated logs the parameter change and fans it out to sensors
// with both the previous and the new state.
func (m *Mixer) notifySignalUpdated(before, after types.SignalSnapshot) {
	m.NotifyLoggers(
		types.DebugLevel,
		"Signal updated",
		"component", m.componentMetadata,
		"event", "SignalUpdated",
		"result", "SUCCESS",
		"before", before,
		"after", after,
	)
	for _, sensor := range m.snapshotSensors() {
		if sensor == nil {
			continue
		}
		sensor.InvokeOnSignalUpdated(m.componentMetadata, before, after)
	}
}

// notifyAggregateError logs an aggregation failure and fans it out to sensors.
func (m *Mixer) notifyAggregateError(err error) {
	m.NotifyLoggers(
		types.ErrorLevel,
		"Aggregation failed",
		"component", m.componentMetadata,
		"event", "Aggregate",
		"result", "FAILURE",
		"error", err,
	)
	for _, sensor := range m.snapshotSensors() {
		if sensor == nil {
			continue
		}
		sensor.InvokeOnError(m.componentMetadata, err)
	}
}
