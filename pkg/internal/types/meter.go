package types

import (
	"context"
	"time"
)

// MeterSnapshot is a point-in-time view of the render pipeline's health, combining
// pipeline counters with process-level resource usage.
type MeterSnapshot struct {
	FramesRendered   uint64  `json:"framesRendered"`
	RenderErrors     uint64  `json:"renderErrors"`
	LastRenderMillis float64 `json:"lastRenderMillis"`
	AvgRenderMillis  float64 `json:"avgRenderMillis"`
	SignalCount      int     `json:"signalCount"`
	CPUPercent       float64 `json:"cpuPercent"`
	RAMPercent       float64 `json:"ramPercent"`
	Goroutines       int     `json:"goroutines"`
	UptimeSeconds    float64 `json:"uptimeSeconds"`
}

// Meter aggregates render-pipeline metrics and periodically samples process resource usage.
type Meter interface {
	// Monitor starts the background resource sampler; it returns when ctx is done.
	Monitor(ctx context.Context)

	// RecordRender records one completed chart render and its duration.
	RecordRender(d time.Duration)

	// RecordRenderError records a failed render.
	RecordRenderError()

	// SetSignalCount records the current number of signals in the mixer.
	SetSignalCount(n int)

	// Snapshot returns the current metric values.
	Snapshot() MeterSnapshot

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
