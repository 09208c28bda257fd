package ui

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"bellsim/domain/bell"
)

// Chart geometry. The x axis spans detector angle differences [0, π/2],
// the y axis agreement rates [0, 1].
const (
	chartWidth   = 720
	chartHeight  = 360
	marginLeft   = 52
	marginRight  = 16
	marginTop    = 28
	marginBottom = 42
)

// RenderCurveSVG draws one model's binned agreement curve against the
// quantum cos² prediction, with the Bell-local and Bell-non-local
// regions shaded the way the classic chart does.
func RenderCurveSVG(curve bell.Curve, title string) template.HTML {
	var b strings.Builder

	plotW := float64(chartWidth - marginLeft - marginRight)
	plotH := float64(chartHeight - marginTop - marginBottom)
	xMax := math.Pi / 2
	px := func(x float64) float64 { return marginLeft + x/xMax*plotW }
	py := func(y float64) float64 { return marginTop + (1-y)*plotH }

	fmt.Fprintf(&b, `<svg viewBox="0 0 %d %d" class="chart" role="img" aria-label="%s">`,
		chartWidth, chartHeight, template.HTMLEscapeString(title))

	// Shaded regions: the triangle below the local bound is reachable
	// without communication, everything above it is not.
	fmt.Fprintf(&b, `<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="limegreen" opacity="0.15"/>`,
		px(0), py(1), px(xMax), py(0), px(0), py(0))
	fmt.Fprintf(&b, `<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="teal" opacity="0.15"/>`,
		px(0), py(1), px(xMax), py(0), px(xMax), py(1))
	fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" class="region">Bell local</text>`, px(0.25), py(0.28))
	fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" class="region">Bell non-local</text>`, px(0.95), py(0.62))

	// Quantum prediction cos²(Δ).
	var quantum strings.Builder
	const samples = 100
	for i := 0; i <= samples; i++ {
		x := xMax * float64(i) / samples
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&quantum, "%s%.1f %.1f ", cmd, px(x), py(bell.QuantumAgreement(x)))
	}
	fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="crimson" stroke-width="2"/>`, strings.TrimSpace(quantum.String()))

	// The model's binned curve.
	if len(curve) > 0 {
		var points strings.Builder
		for _, bin := range curve {
			fmt.Fprintf(&points, "%.1f,%.1f ", px(bin.AngleDiff), py(bin.Agreement))
		}
		fmt.Fprintf(&b, `<polyline points="%s" fill="none" stroke="indigo" stroke-width="2" stroke-dasharray="4 3"/>`,
			strings.TrimSpace(points.String()))
	}

	drawAxes(&b, px, py)
	drawLegend(&b)

	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

func drawAxes(b *strings.Builder, px, py func(float64) float64) {
	xMax := math.Pi / 2
	fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" class="axis"/>`,
		px(0), py(0), px(xMax), py(0))
	fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" class="axis"/>`,
		px(0), py(0), px(0), py(1))

	xTicks := []struct {
		value float64
		label string
	}{
		{0, "0"},
		{math.Pi / 8, "π/8"},
		{math.Pi / 4, "π/4"},
		{3 * math.Pi / 8, "3π/8"},
		{math.Pi / 2, "π/2"},
	}
	for _, tick := range xTicks {
		fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" class="axis"/>`,
			px(tick.value), py(0), px(tick.value), py(0)+5)
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" class="tick" text-anchor="middle">%s</text>`,
			px(tick.value), py(0)+20, tick.label)
	}
	for y := 0.0; y <= 1.0; y += 0.25 {
		fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" class="axis"/>`,
			px(0)-5, py(y), px(0), py(y))
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" class="tick" text-anchor="end">%.2f</text>`,
			px(0)-9, py(y)+4, y)
	}

	fmt.Fprintf(b, `<text x="%.1f" y="%d" class="label" text-anchor="middle">detector angle difference (rad)</text>`,
		px(xMax/2), chartHeight-4)
}

func drawLegend(b *strings.Builder) {
	x := float64(marginLeft + 12)
	fmt.Fprintf(b, `<line x1="%.1f" y1="14" x2="%.1f" y2="14" stroke="indigo" stroke-width="2" stroke-dasharray="4 3"/>`, x, x+26)
	fmt.Fprintf(b, `<text x="%.1f" y="18" class="tick">photon model</text>`, x+32)
	fmt.Fprintf(b, `<line x1="%.1f" y1="14" x2="%.1f" y2="14" stroke="crimson" stroke-width="2"/>`, x+150, x+176)
	fmt.Fprintf(b, `<text x="%.1f" y="18" class="tick">empirical reality (cos²)</text>`, x+182)
}
