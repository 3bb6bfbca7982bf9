package render

import (
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// WaveformChart draws the raw aggregate time-domain signal as a connected line.
// Its vertical scale is re-derived on every frame from the signal's actual
// min/max, so the trace always fills the plot regardless of how many signals
// are stacked.
type WaveformChart struct {
	baseChart
}

// NewWaveformChart constructs the chart and renders a flat placeholder line.
func NewWaveformChart(source Source, options ...types.Option[*WaveformChart]) *WaveformChart {
	c := &WaveformChart{baseChart: newBaseChart("WAVEFORM_CHART", source, DefaultGeometry())}
	for _, opt := range options {
		opt(c)
	}
	c.storeFrame(c.draw(make([]float64, source.Config().BufferSize)))
	return c
}

// WaveformChartWithLogger registers loggers for the chart.
func WaveformChartWithLogger(l ...types.Logger) types.Option[*WaveformChart] {
	return func(c *WaveformChart) {
		c.ConnectLogger(l...)
	}
}

// WaveformChartWithSensor registers sensors notified per rendered frame.
func WaveformChartWithSensor(s ...types.Sensor) types.Option[*WaveformChart] {
	return func(c *WaveformChart) {
		c.ConnectSensor(s...)
	}
}

// WaveformChartWithGeometry overrides the chart dimensions.
func WaveformChartWithGeometry(g Geometry) types.Option[*WaveformChart] {
	return func(c *WaveformChart) {
		c.geom = g
	}
}

// Render derives a fresh frame from the mixer's current total signal.
func (c *WaveformChart) Render() ([]byte, error) {
	c.renderMu.Lock()
	defer c.renderMu.Unlock()

	total, err := c.source.TotalSignal()
	if err != nil {
		c.notifyRenderError(err)
		return nil, err
	}
	frame := c.draw(total)
	c.storeFrame(frame)
	c.notifyFrameRendered("waveform", len(frame))
	return frame, nil
}

func (c *WaveformChart) draw(samples []float64) []byte {
	geom := c.geom
	left := float64(geom.Pad)
	right := float64(geom.Width - geom.Pad)
	top := float64(geom.Pad / 2)
	bottom := float64(geom.Height - geom.Pad)

	min, max := -1.0, 1.0
	if len(samples) > 0 {
		min, max = floats.Min(samples), floats.Max(samples)
	}
	// A constant signal (silence, DC) collapses the domain; pad it so the
	// scale mapping stays defined.
	if min == max {
		min, max = min-1, max+1
	}

	xScale := NewLinearScale(0, float64(len(samples)), left, right)
	yScale := NewLinearScale(min, max, bottom, top)

	var b svgBuilder
	b.open(geom.Width, geom.Height)
	b.axes(geom, xScale, yScale,
		func(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) },
		func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) })

	points := make([]string, 0, len(samples))
	for i, v := range samples {
		points = append(points, f(xScale.Map(float64(i)))+","+f(yScale.Map(v)))
	}
	b.polyline(points, "#f0883e")
	return b.close()
}
