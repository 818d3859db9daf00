package chart

// Package chart renders already-aggregated series as standalone SVG
// documents. Renderers perform no aggregation and no I/O: values and
// pre-formatted labels come in, an SVG string comes out. Geometry is a
// linear scaling of value over the series maximum; an all-zero series
// renders flat baseline bars and an empty series renders an explicit
// "no data" placeholder instead of an empty canvas.

import (
	"fmt"
	"math"
	"strings"
)

const (
	width       = 640
	height      = 240
	padding     = 24
	plotHeight  = height - 2*padding
	plotWidth   = width - 2*padding
	barGap      = 4
	labelOffset = 14
)

// Value is one renderable datum.
type Value struct {
	Label string
	Y     float64
}

// Bar renders a vertical bar chart.
func Bar(title string, values []Value) string {
	if len(values) == 0 {
		return placeholder(title)
	}

	max := maxY(values)
	// Long series (a 1y period is 365+ points) leave slots narrower than
	// the gap; drop the gap first and floor the width at 1 so no rect
	// ever goes non-positive.
	slot := float64(plotWidth) / float64(len(values))
	gap := float64(barGap)
	if slot-gap < 1 {
		gap = 0
	}
	barWidth := math.Max(1, slot-gap)

	var b strings.Builder
	openSVG(&b, title)
	for i, v := range values {
		h := scale(v.Y, max)
		x := float64(padding) + float64(i)*slot
		y := float64(padding+plotHeight) - h
		fmt.Fprintf(&b,
			`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#4f6ef7"><title>%s: %s</title></rect>`,
			x, y, barWidth, h, escape(v.Label), trimFloat(v.Y))
		b.WriteByte('\n')
		if showLabel(i, len(values)) {
			fmt.Fprintf(&b,
				`<text x="%.1f" y="%d" font-size="10" text-anchor="middle">%s</text>`,
				x+barWidth/2, padding+plotHeight+labelOffset, escape(v.Label))
			b.WriteByte('\n')
		}
	}
	closeSVG(&b)
	return b.String()
}

// Line renders a polyline over the series.
func Line(title string, values []Value) string {
	if len(values) == 0 {
		return placeholder(title)
	}

	max := maxY(values)
	step := float64(plotWidth)
	if len(values) > 1 {
		step = float64(plotWidth) / float64(len(values)-1)
	}

	var path strings.Builder
	for i, v := range values {
		x := float64(padding) + float64(i)*step
		y := float64(padding+plotHeight) - scale(v.Y, max)
		if i == 0 {
			fmt.Fprintf(&path, "M %.1f %.1f", x, y)
		} else {
			fmt.Fprintf(&path, " L %.1f %.1f", x, y)
		}
	}

	var b strings.Builder
	openSVG(&b, title)
	fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="#4f6ef7" stroke-width="2"/>`, path.String())
	b.WriteByte('\n')
	closeSVG(&b)
	return b.String()
}

// Pie renders the series as pie slices. Zero-total input falls back to
// the placeholder since there is nothing proportional to draw.
func Pie(title string, values []Value) string {
	total := 0.0
	for _, v := range values {
		total += v.Y
	}
	if len(values) == 0 || total <= 0 {
		return placeholder(title)
	}

	const (
		cx = width / 2
		cy = height / 2
		r  = float64(plotHeight) / 2
	)
	colors := []string{"#4f6ef7", "#f76e4f", "#4ff7a0", "#f7d34f", "#a04ff7", "#6ef74f", "#f74f9e", "#4fcdf7"}

	var b strings.Builder
	openSVG(&b, title)
	angle := -math.Pi / 2
	for i, v := range values {
		share := v.Y / total
		next := angle + share*2*math.Pi
		// A full-turn arc has coinciding endpoints and draws nothing, so
		// a slice holding (essentially) the whole pie becomes a circle.
		if share >= 1-1e-9 {
			fmt.Fprintf(&b,
				`<circle cx="%d" cy="%d" r="%.1f" fill="%s"><title>%s: %s</title></circle>`,
				cx, cy, r, colors[i%len(colors)], escape(v.Label), trimFloat(v.Y))
			b.WriteByte('\n')
			angle = next
			continue
		}
		x1, y1 := cx+r*math.Cos(angle), cy+r*math.Sin(angle)
		x2, y2 := cx+r*math.Cos(next), cy+r*math.Sin(next)
		large := 0
		if share > 0.5 {
			large = 1
		}
		fmt.Fprintf(&b,
			`<path d="M %d %d L %.1f %.1f A %.1f %.1f 0 %d 1 %.1f %.1f Z" fill="%s"><title>%s: %s</title></path>`,
			cx, cy, x1, y1, r, r, large, x2, y2,
			colors[i%len(colors)], escape(v.Label), trimFloat(v.Y))
		b.WriteByte('\n')
		angle = next
	}
	closeSVG(&b)
	return b.String()
}

func openSVG(b *strings.Builder, title string) {
	fmt.Fprintf(b,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		width, height, width, height)
	b.WriteByte('\n')
	fmt.Fprintf(b, `<text x="%d" y="%d" font-size="12" font-weight="bold">%s</text>`,
		padding, labelOffset, escape(title))
	b.WriteByte('\n')
}

func closeSVG(b *strings.Builder) {
	b.WriteString("</svg>\n")
}

func placeholder(title string) string {
	var b strings.Builder
	openSVG(&b, title)
	fmt.Fprintf(&b,
		`<text x="%d" y="%d" font-size="14" text-anchor="middle" fill="#888">no data</text>`,
		width/2, height/2)
	b.WriteByte('\n')
	closeSVG(&b)
	return b.String()
}

func maxY(values []Value) float64 {
	max := 0.0
	for _, v := range values {
		if v.Y > max {
			max = v.Y
		}
	}
	return max
}

// scale maps a value linearly onto the drawable height. A zero max means
// an all-zero series; every bar collapses to the baseline.
func scale(y, max float64) float64 {
	if max <= 0 || y <= 0 {
		return 0
	}
	return y / max * float64(plotHeight)
}

// showLabel thins x-axis labels so long series stay readable.
func showLabel(i, n int) bool {
	if n <= 16 {
		return true
	}
	step := (n + 15) / 16
	return i%step == 0
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
