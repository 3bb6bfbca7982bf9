package builder

import (
	"github.com/joeydtaylor/spectra/pkg/internal/render"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// Chart is a live SVG view over a mixer.
type Chart = types.Chart

// Geometry fixes a chart's pixel dimensions.
type Geometry = render.Geometry

// ChartSource is the aggregate charts draw from; *Mixer satisfies it.
type ChartSource = render.Source

// DefaultGeometry returns the standard 900x300 chart frame.
func DefaultGeometry() Geometry {
	return render.DefaultGeometry()
}

// SubscribeChart re-renders the chart on every broadcast from the sensor.
func SubscribeChart(chart Chart, s types.Sensor) {
	render.Subscribe(chart, s)
}

// NewWaveformChart creates the time-domain line chart.
func NewWaveformChart(source ChartSource, options ...types.Option[*render.WaveformChart]) *render.WaveformChart {
	return render.NewWaveformChart(source, options...)
}

// WaveformChartWithLogger adds a logger to the chart.
func WaveformChartWithLogger(logger ...types.Logger) types.Option[*render.WaveformChart] {
	return render.WaveformChartWithLogger(logger...)
}

// WaveformChartWithSensor attaches sensors notified per rendered frame.
func WaveformChartWithSensor(s ...types.Sensor) types.Option[*render.WaveformChart] {
	return render.WaveformChartWithSensor(s...)
}

// WaveformChartWithGeometry overrides the chart geometry.
func WaveformChartWithGeometry(g Geometry) types.Option[*render.WaveformChart] {
	return render.WaveformChartWithGeometry(g)
}

// NewSpectrumChart creates the band-indexed spectrum bar chart.
func NewSpectrumChart(source ChartSource, options ...types.Option[*render.SpectrumChart]) *render.SpectrumChart {
	return render.NewSpectrumChart(source, options...)
}

// SpectrumChartWithLogger adds a logger to the chart.
func SpectrumChartWithLogger(logger ...types.Logger) types.Option[*render.SpectrumChart] {
	return render.SpectrumChartWithLogger(logger...)
}

// SpectrumChartWithSensor attaches sensors notified per rendered frame.
func SpectrumChartWithSensor(s ...types.Sensor) types.Option[*render.SpectrumChart] {
	return render.SpectrumChartWithSensor(s...)
}

// SpectrumChartWithGeometry overrides the chart geometry.
func SpectrumChartWithGeometry(g Geometry) types.Option[*render.SpectrumChart] {
	return render.SpectrumChartWithGeometry(g)
}

// NewFrequencyChart creates the frequency-mapped spectrum bar chart.
func NewFrequencyChart(source ChartSource, options ...types.Option[*render.FrequencyChart]) *render.FrequencyChart {
	return render.NewFrequencyChart(source, options...)
}

// FrequencyChartWithLogger adds a logger to the chart.
func FrequencyChartWithLogger(logger ...types.Logger) types.Option[*render.FrequencyChart] {
	return render.FrequencyChartWithLogger(logger...)
}

// FrequencyChartWithSensor attaches sensors notified per rendered frame.
func FrequencyChartWithSensor(s ...types.Sensor) types.Option[*render.FrequencyChart] {
	return render.FrequencyChartWithSensor(s...)
}

// FrequencyChartWithGeometry overrides the chart geometry.
func FrequencyChartWithGeometry(g Geometry) types.Option[*render.FrequencyChart] {
	return render.FrequencyChartWithGeometry(g)
}
