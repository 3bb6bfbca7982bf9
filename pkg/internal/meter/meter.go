// Package meter aggregates render-pipeline metrics: frames rendered, render
// latency, current signal count, plus process-level CPU/RAM sampled in the
// background. The HTTP layer exposes a snapshot of these at /api/stats.
package meter

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/joeydtaylor/spectra/pkg/internal/types"
	"github.com/joeydtaylor/spectra/pkg/internal/utils"
)

// Meter is the types.Meter implementation.
type Meter struct {
	componentMetadata types.ComponentMetadata
	sampleInterval    time.Duration
	startTime         time.Time

	framesRendered uint64
	renderErrors   uint64
	totalRenderNs  uint64
	lastRenderNs   uint64
	signalCount    int64

	resourceLock sync.Mutex
	cpuPercent   float64
	ramPercent   float64

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewMeter creates a meter and applies options.
func NewMeter(options ...types.Option[types.Meter]) types.Meter {
	m := &Meter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "METER",
		},
		sampleInterval: time.Second,
		startTime:      time.Now(),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// WithLogger registers loggers for the meter.
func WithLogger(l ...types.Logger) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.ConnectLogger(l...)
	}
}

// WithSampleInterval overrides how often process resources are sampled.
func WithSampleInterval(d time.Duration) types.Option[types.Meter] {
	return func(m types.Meter) {
		if mm, ok := m.(*Meter); ok && d > 0 {
			mm.sampleInterval = d
		}
	}
}

// WithComponentMetadata adds component metadata overrides.
func WithComponentMetadata(name string, id string) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.SetComponentMetadata(name, id)
	}
}

// GetComponentMetadata returns the meter metadata.
func (m *Meter) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

// SetComponentMetadata overrides the meter's name and id.
func (m *Meter) SetComponentMetadata(name string, id string) {
	m.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: m.componentMetadata.Type}
}

// ConnectLogger attaches logger(s).
func (m *Meter) ConnectLogger(loggers ...types.Logger) {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	m.loggers = append(m.loggers, loggers...)
}

// RecordRender records one completed chart render and its duration.
func (m *Meter) RecordRender(d time.Duration) {
	atomic.AddUint64(&m.framesRendered, 1)
	atomic.AddUint64(&m.totalRenderNs, uint64(d.Nanoseconds()))
	atomic.StoreUint64(&m.lastRenderNs, uint64(d.Nanoseconds()))
}

// RecordRenderError records a failed render.
func (m *Meter) RecordRenderError() {
	atomic.AddUint64(&m.renderErrors, 1)
}

// SetSignalCount records the current number of signals in the mixer.
func (m *Meter) SetSignalCount(n int) {
	atomic.StoreInt64(&m.signalCount, int64(n))
}

// Monitor samples process CPU and RAM usage until ctx is done.
func (m *Meter) Monitor(ctx context.Context) {
	ticker := time.NewTicker(m.sampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.NotifyLoggers(
				types.InfoLevel,
				"Meter monitor stopped",
				"component", m.componentMetadata,
				"event", "Monitor",
				"result", "SUCCESS",
			)
			return
		case <-ticker.C:
			m.sampleResources()
		}
	}
}

func (m *Meter) sampleResources() {
	cpuPercentages, _ := cpu.Percent(0, false)
	memStats, _ := mem.VirtualMemory()

	m.resourceLock.Lock()
	if len(cpuPercentages) > 0 {
		m.cpuPercent = cpuPercentages[0]
	}
	if memStats != nil {
		m.ramPercent = memStats.UsedPercent
	}
	m.resourceLock.Unlock()
}

// Snapshot returns the current metric values.
func (m *Meter) Snapshot() types.MeterSnapshot {
	frames := atomic.LoadUint64(&m.framesRendered)
	totalNs := atomic.LoadUint64(&m.totalRenderNs)

	avgMs := 0.0
	if frames > 0 {
		avgMs = float64(totalNs) / float64(frames) / 1e6
	}

	m.resourceLock.Lock()
	cpuPct, ramPct := m.cpuPercent, m.ramPercent
	m.resourceLock.Unlock()

	return types.MeterSnapshot{
		FramesRendered:   frames,
		RenderErrors:     atomic.LoadUint64(&m.renderErrors),
		LastRenderMillis: float64(atomic.LoadUint64(&m.lastRenderNs)) / 1e6,
		AvgRenderMillis:  avgMs,
		SignalCount:      int(atomic.LoadInt64(&m.signalCount)),
		CPUPercent:       cpuPct,
		RAMPercent:       ramPct,
		Goroutines:       runtime.NumGoroutine(),
		UptimeSeconds:    time.Since(m.startTime).Seconds(),
	}
}

// NotifyLoggers sends a log message with the specified level, message, and key/value pairs
// to all attached loggers, honoring each logger's level gate.
func (m *Meter) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	m.loggersLock.Lock()
	loggers := append([]types.Logger(nil), m.loggers...)
	m.loggersLock.Unlock()

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
