package render

import (
	"fmt"
	"strconv"
	"strings"
)

// svgBuilder accumulates one SVG document. Numeric attributes are written with
// trimmed precision to keep frame payloads small for the websocket push.
type svgBuilder struct {
	sb strings.Builder
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func (b *svgBuilder) open(width, height int) {
	fmt.Fprintf(&b.sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	b.sb.WriteString(`<rect width="100%" height="100%" fill="#111418"/>`)
}

func (b *svgBuilder) close() []byte {
	b.sb.WriteString(`</svg>`)
	return []byte(b.sb.String())
}

func (b *svgBuilder) line(x1, y1, x2, y2 float64, stroke string) {
	fmt.Fprintf(&b.sb,
		`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`,
		f(x1), f(y1), f(x2), f(y2), stroke)
}

func (b *svgBuilder) text(x, y float64, anchor, s string) {
	fmt.Fprintf(&b.sb,
		`<text x="%s" y="%s" fill="#8b949e" font-size="10" font-family="monospace" text-anchor="%s">%s</text>`,
		f(x), f(y), anchor, s)
}

// bar emits one spectrum bar, animated from its previous geometry so frame
// updates render as a transition rather than a jump.
func (b *svgBuilder) bar(x, y, w, h, prevY, prevH float64, fill string) {
	fmt.Fprintf(&b.sb, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s">`,
		f(x), f(y), f(w), f(h), fill)
	if prevY != y || prevH != h {
		fmt.Fprintf(&b.sb, `<animate attributeName="y" from="%s" to="%s" dur="0.2s" fill="freeze"/>`, f(prevY), f(y))
		fmt.Fprintf(&b.sb, `<animate attributeName="height" from="%s" to="%s" dur="0.2s" fill="freeze"/>`, f(prevH), f(h))
	}
	b.sb.WriteString(`</rect>`)
}

func (b *svgBuilder) polyline(points []string, stroke string) {
	fmt.Fprintf(&b.sb,
		`<polyline points="%s" fill="none" stroke="%s" stroke-width="1"/>`,
		strings.Join(points, " "), stroke)
}

// axes draws the static chart frame: the plot border plus labeled ticks along
// both scales. Drawn identically before and after the first data frame.
func (b *svgBuilder) axes(geom Geometry, xScale, yScale LinearScale, xLabel func(float64) string, yLabel func(float64) string) {
	left := float64(geom.Pad)
	right := float64(geom.Width - geom.Pad)
	top := float64(geom.Pad / 2)
	bottom := float64(geom.Height - geom.Pad)

	b.line(left, top, left, bottom, "#30363d")
	b.line(left, bottom, right, bottom, "#30363d")

	for _, t := range xScale.Ticks(8) {
		x := xScale.Map(t)
		b.line(x, bottom, x, bottom+4, "#30363d")
		b.text(x, bottom+16, "middle", xLabel(t))
	}
	for _, t := range yScale.Ticks(5) {
		y := yScale.Map(t)
		b.line(left-4, y, left, y, "#30363d")
		b.text(left-8, y+3, "end", yLabel(t))
	}
}

func formatHz(v float64) string {
	if v >= 1000 {
		return strconv.FormatFloat(v/1000, 'f', -1, 64) + "k"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDB(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
