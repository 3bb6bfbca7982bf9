package render

import (
	"strconv"

	"github.com/joeydtaylor/spectra/pkg/internal/dspmath"
	"github.com/joeydtaylor/spectra/pkg/internal/spectrum"
	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// SpectrumChart draws the decibel spectrum as bars positioned by raw band index.
// Each frame is peak-normalized so the loudest band sits at exactly 0 dB, and
// the vertical scale re-derives from the frame minimum up to 0.
type SpectrumChart struct {
	baseChart
	prevY []float64
	prevH []float64
}

// NewSpectrumChart constructs the chart and renders its placeholder frame of
// zero-height bars, one per band, before any real data arrives.
func NewSpectrumChart(source Source, options ...types.Option[*SpectrumChart]) *SpectrumChart {
	c := &SpectrumChart{baseChart: newBaseChart("SPECTRUM_CHART", source, DefaultGeometry())}
	for _, opt := range options {
		opt(c)
	}
	c.renderPlaceholder()
	return c
}

// SpectrumChartWithLogger registers loggers for the chart.
func SpectrumChartWithLogger(l ...types.Logger) types.Option[*SpectrumChart] {
	return func(c *SpectrumChart) {
		c.ConnectLogger(l...)
	}
}

// SpectrumChartWithSensor registers sensors notified per rendered frame.
func SpectrumChartWithSensor(s ...types.Sensor) types.Option[*SpectrumChart] {
	return func(c *SpectrumChart) {
		c.ConnectSensor(s...)
	}
}

// SpectrumChartWithGeometry overrides the chart dimensions.
func SpectrumChartWithGeometry(g Geometry) types.Option[*SpectrumChart] {
	return func(c *SpectrumChart) {
		c.geom = g
	}
}

func (c *SpectrumChart) renderPlaceholder() {
	bands := c.source.Config().Bands()
	zeros := make([]float64, bands)
	for i := range zeros {
		zeros[i] = dspmath.Zero()
	}
	c.prevY = make([]float64, bands)
	c.prevH = make([]float64, bands)

	bottom := float64(c.geom.Height - c.geom.Pad)
	for i := range c.prevY {
		c.prevY[i] = bottom
	}
	c.storeFrame(c.draw(zeros, spectrum.NoiseFloorDB, true))
}

// Render derives a fresh frame from the mixer's current transform.
func (c *SpectrumChart) Render() ([]byte, error) {
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
	c.notifyFrameRendered("spectrum", len(frame))
	return frame, nil
}

func (c *SpectrumChart) draw(db []float64, min float64, placeholder bool) []byte {
	geom := c.geom
	left := float64(geom.Pad)
	right := float64(geom.Width - geom.Pad)
	top := float64(geom.Pad / 2)
	bottom := float64(geom.Height - geom.Pad)

	xScale := NewLinearScale(0, float64(len(db)), left, right)
	yScale := NewLinearScale(min, 0, bottom, top)

	var b svgBuilder
	b.open(geom.Width, geom.Height)
	b.axes(geom, xScale, yScale,
		func(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) },
		formatDB)

	barWidth := (right - left) / float64(len(db))
	for i, v := range db {
		x := xScale.Map(float64(i))
		y := bottom
		if !placeholder {
			y = yScale.Map(v)
		}
		h := bottom - y
		b.bar(x, y, barWidth, h, c.prevY[i], c.prevH[i], "#58a6ff")
		c.prevY[i], c.prevH[i] = y, h
	}
	return b.close()
}
