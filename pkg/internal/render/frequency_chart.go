package render

import (
	"github.com/joeydtaylor/spectra/pkg/internal/spectrum"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// FrequencyChart draws the same peak-normalized decibel spectrum as
// SpectrumChart, but positions each bar by its band's center frequency on a
// linear Hz axis from 0 to Nyquist instead of by raw band index.
type FrequencyChart struct {
	baseChart
	prevY []float64
	prevH []float64
}

// NewFrequencyChart constructs the chart and renders its placeholder frame.
func NewFrequencyChart(source Source, options ...types.Option[*FrequencyChart]) *FrequencyChart {
	c := &FrequencyChart{baseChart: newBaseChart("FREQUENCY_CHART", source, DefaultGeometry())}
	for _, opt := range options {
		opt(c)
	}
	c.renderPlaceholder()
	return c
}

// FrequencyChartWithLogger registers loggers for the chart.
func FrequencyChartWithLogger(l ...types.Logger) types.Option[*FrequencyChart] {
	return func(c *FrequencyChart) {
		c.ConnectLogger(l...)
	}
}

// FrequencyChartWithSensor registers sensors notified per rendered frame.
func FrequencyChartWithSensor(s ...types.Sensor) types.Option[*FrequencyChart] {
	return func(c *FrequencyChart) {
		c.ConnectSensor(s...)
	}
}

// FrequencyChartWithGeometry overrides the chart dimensions.
func FrequencyChartWithGeometry(g Geometry) types.Option[*FrequencyChart] {
	return func(c *FrequencyChart) {
		c.geom = g
	}
}

func (c *FrequencyChart) renderPlaceholder() {
	bands := c.source.Config().Bands()
	c.prevY = make([]float64, bands)
	c.prevH = make([]float64, bands)
	bottom := float64(c.geom.Height - c.geom.Pad)
	for i := range c.prevY {
		c.prevY[i] = bottom
	}
	c.storeFrame(c.draw(make([]float64, bands), spectrum.NoiseFloorDB, true))
}

// Render derives a fresh frame from the mixer's current transform.
func (c *FrequencyChart) Render() ([]byte, error) {
	c.renderMu.Lock()
	defer c.renderMu.Unlock()

	tr, err := c.source.Transform()
	if err != nil {
		c.notifyRenderError(err)
		return nil, err
	}
	db, min := spectrum.NormalizeToPeak(tr.Decibels())
	frame := c.draw(db, min, false)
	c.storeFrame(frame)
	c.notifyFrameRendered("frequency", len(frame))
	return frame, nil
}

func (c *FrequencyChart) draw(db []float64, min float64, placeholder bool) []byte {
	geom := c.geom
	cfg := c.source.Config()
	left := float64(geom.Pad)
	right := float64(geom.Width - geom.Pad)
	top := float64(geom.Pad / 2)
	bottom := float64(geom.Height - geom.Pad)

	xScale := NewLinearScale(0, cfg.Nyquist(), left, right)
	yScale := NewLinearScale(min, 0, bottom, top)

	var b svgBuilder
	b.open(geom.Width, geom.Height)
	b.axes(geom, xScale, yScale, formatHz, formatDB)

	barWidth := (right - left) / float64(len(db))
	for i, v := range db {
		x := xScale.Map(cfg.BandFrequency(i)) - barWidth/2
		y := bottom
		if !placeholder {
			y = yScale.Map(v)
		}
		h := bottom - y
		b.bar(x, y, barWidth, h, c.prevY[i], c.prevH[i], "#3fb950")
		c.prevY[i], c.prevH[i] = y, h
	}
	return b.close()
}
